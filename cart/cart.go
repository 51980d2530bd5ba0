package cart

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/visourastudio-blip/pizza-do-ze/catalog"
)

var (
	ErrUnknownPizza    = errors.New("unknown pizza")
	ErrUnknownBeverage = errors.New("unknown beverage")
	ErrUnknownDessert  = errors.New("unknown dessert")
	ErrUnknownCrust    = errors.New("unknown crust option")
	ErrUnknownExtra    = errors.New("unknown extra")
	ErrInvalidSize     = errors.New("invalid pizza size")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Cart holds the line items of one customer. Every mutation writes the
// full snapshot back to the store under the cart's key; a snapshot that
// fails to decode on load yields an empty cart rather than an error.
type Cart struct {
	mu    sync.Mutex
	key   string
	store Store
	items []LineItem
}

// New returns a cart hydrated from the store if a snapshot exists under
// key, otherwise an empty one.
func New(key string, store Store) *Cart {
	c := &Cart{key: key, store: store}
	data, err := store.Load(key)
	if err != nil || len(data) == 0 {
		return c
	}
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt snapshot: start over empty.
		return c
	}
	c.items = items
	return c
}

func (c *Cart) persist() error {
	data, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Save(c.key, data)
}

// AddPizza validates the configuration against the catalog and appends
// a new line. Identical configurations are never merged: every
// customized pizza is its own line.
func (c *Cart) AddPizza(cfg PizzaConfig, qty int, notes string) (LineItem, error) {
	if qty < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	if !catalog.ValidSize(cfg.Size) {
		return LineItem{}, ErrInvalidSize
	}
	if _, ok := catalog.PizzaByID(cfg.PizzaID); !ok {
		return LineItem{}, ErrUnknownPizza
	}
	if cfg.SecondPizzaID != "" {
		if _, ok := catalog.PizzaByID(cfg.SecondPizzaID); !ok {
			return LineItem{}, ErrUnknownPizza
		}
	}
	if cfg.CrustID != "" {
		if _, ok := catalog.CrustByID(cfg.CrustID); !ok {
			return LineItem{}, ErrUnknownCrust
		}
	}
	for _, id := range cfg.ExtraIDs {
		if _, ok := catalog.ExtraByID(id); !ok {
			return LineItem{}, ErrUnknownExtra
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	line := LineItem{
		ID:       uuid.NewString(),
		Kind:     KindPizza,
		Quantity: qty,
		Notes:    notes,
		Pizza:    &cfg,
	}
	c.items = append(c.items, line)
	if err := c.persist(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return LineItem{}, err
	}
	return line, nil
}

// AddBeverage adds qty units of a catalog beverage. If a line for the
// same beverage already exists its quantity is increased instead of a
// second line being inserted.
func (c *Cart) AddBeverage(beverageID string, qty int) (LineItem, error) {
	if qty < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	if _, ok := catalog.BeverageByID(beverageID); !ok {
		return LineItem{}, ErrUnknownBeverage
	}
	return c.addOrMerge(KindBeverage, beverageID, qty)
}

// AddDessert adds qty units of a catalog dessert with the same
// merge-by-identity behavior as AddBeverage.
func (c *Cart) AddDessert(dessertID string, qty int) (LineItem, error) {
	if qty < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	if _, ok := catalog.DessertByID(dessertID); !ok {
		return LineItem{}, ErrUnknownDessert
	}
	return c.addOrMerge(KindDessert, dessertID, qty)
}

func (c *Cart) addOrMerge(kind LineKind, itemID string, qty int) (LineItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Kind == kind && c.items[i].ItemID == itemID {
			prev := c.items[i].Quantity
			c.items[i].Quantity += qty
			if err := c.persist(); err != nil {
				c.items[i].Quantity = prev
				return LineItem{}, err
			}
			return c.items[i], nil
		}
	}
	line := LineItem{
		ID:       uuid.NewString(),
		Kind:     kind,
		Quantity: qty,
		ItemID:   itemID,
	}
	c.items = append(c.items, line)
	if err := c.persist(); err != nil {
		c.items = c.items[:len(c.items)-1]
		return LineItem{}, err
	}
	return line, nil
}

// RemoveItem deletes the line with the given id. Removing an unknown id
// is a no-op.
func (c *Cart) RemoveItem(lineID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(lineID)
}

func (c *Cart) removeLocked(lineID string) error {
	for i := range c.items {
		if c.items[i].ID == lineID {
			removed := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			if err := c.persist(); err != nil {
				c.items = append(c.items[:i], append([]LineItem{removed}, c.items[i:]...)...)
				return err
			}
			return nil
		}
	}
	return nil
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or
// less removes the line.
func (c *Cart) UpdateQuantity(lineID string, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		return c.removeLocked(lineID)
	}
	for i := range c.items {
		if c.items[i].ID == lineID {
			prev := c.items[i].Quantity
			c.items[i].Quantity = qty
			if err := c.persist(); err != nil {
				c.items[i].Quantity = prev
				return err
			}
			return nil
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.items
	c.items = nil
	if err := c.persist(); err != nil {
		c.items = prev
		return err
	}
	return nil
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of every line's unit price times its quantity.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, li := range c.items {
		total += li.Total()
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, li := range c.items {
		count += li.Quantity
	}
	return count
}
