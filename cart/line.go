package cart

import (
	"github.com/visourastudio-blip/pizza-do-ze/catalog"
)

// LineKind tags the variant of a cart line. Every switch over it must
// handle all three kinds.
type LineKind string

const (
	KindPizza    LineKind = "pizza"
	KindBeverage LineKind = "beverage"
	KindDessert  LineKind = "dessert"
)

// PizzaConfig is one configured pizza: a primary flavor, an optional
// second flavor for half-and-half, a size, an optional stuffed crust
// and any number of extra toppings.
type PizzaConfig struct {
	PizzaID       string            `json:"pizza_id"`
	SecondPizzaID string            `json:"second_pizza_id,omitempty"`
	Size          catalog.PizzaSize `json:"size"`
	CrustID       string            `json:"crust_id,omitempty"`
	ExtraIDs      []string          `json:"extra_ids,omitempty"`
}

// LineItem is one entry in a cart. Kind selects which payload is set;
// the payloads for the other kinds are nil.
type LineItem struct {
	ID       string       `json:"id"`
	Kind     LineKind     `json:"kind"`
	Quantity int          `json:"quantity"`
	Notes    string       `json:"notes,omitempty"`
	Pizza    *PizzaConfig `json:"pizza,omitempty"`
	ItemID   string       `json:"item_id,omitempty"` // beverage or dessert catalog id
}

// UnitPrice resolves the price of a single unit of this line against the
// catalog. For a half-and-half pizza the base is the more expensive of
// the two flavors at the selected size; crust and extras are additive.
func (li LineItem) UnitPrice() float64 {
	switch li.Kind {
	case KindPizza:
		if li.Pizza == nil {
			return 0
		}
		cfg := li.Pizza
		var price float64
		if p, ok := catalog.PizzaByID(cfg.PizzaID); ok {
			price = p.Prices[cfg.Size]
		}
		if cfg.SecondPizzaID != "" {
			if p, ok := catalog.PizzaByID(cfg.SecondPizzaID); ok {
				if second := p.Prices[cfg.Size]; second > price {
					price = second
				}
			}
		}
		if cfg.CrustID != "" {
			if c, ok := catalog.CrustByID(cfg.CrustID); ok {
				price += c.Price
			}
		}
		for _, id := range cfg.ExtraIDs {
			if e, ok := catalog.ExtraByID(id); ok {
				price += e.Price
			}
		}
		return price
	case KindBeverage:
		if b, ok := catalog.BeverageByID(li.ItemID); ok {
			return b.Price
		}
		return 0
	case KindDessert:
		if d, ok := catalog.DessertByID(li.ItemID); ok {
			return d.Price
		}
		return 0
	}
	return 0
}

// Total is the line's contribution to the cart total.
func (li LineItem) Total() float64 {
	return li.UnitPrice() * float64(li.Quantity)
}

// Label returns a customer-facing name for the line.
func (li LineItem) Label() string {
	switch li.Kind {
	case KindPizza:
		if li.Pizza == nil {
			return "Pizza"
		}
		name := "Pizza"
		if p, ok := catalog.PizzaByID(li.Pizza.PizzaID); ok {
			name = p.Name
		}
		if li.Pizza.SecondPizzaID != "" {
			if p, ok := catalog.PizzaByID(li.Pizza.SecondPizzaID); ok {
				name += " / " + p.Name
			}
		}
		return name
	case KindBeverage:
		if b, ok := catalog.BeverageByID(li.ItemID); ok {
			return b.Name
		}
		return "Beverage"
	case KindDessert:
		if d, ok := catalog.DessertByID(li.ItemID); ok {
			return d.Name
		}
		return "Dessert"
	}
	return ""
}
