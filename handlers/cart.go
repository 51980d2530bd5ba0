package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/visourastudio-blip/pizza-do-ze/cart"
	"github.com/visourastudio-blip/pizza-do-ze/catalog"
	"github.com/visourastudio-blip/pizza-do-ze/middleware"

	"github.com/gin-gonic/gin"
)

// CartHandlers serves the authenticated customer's cart. Carts are
// created at first access and live for the process lifetime; only an
// explicit clear empties one.
type CartHandlers struct {
	Carts *cart.Manager
}

// cartKey is the storage key for a customer's cart snapshot.
func cartKey(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (h *CartHandlers) current(c *gin.Context) *cart.Cart {
	return h.Carts.Get(cartKey(middleware.GetUserID(c)))
}

func cartResponse(ct *cart.Cart) gin.H {
	items := ct.Items()
	lines := make([]gin.H, 0, len(items))
	for _, li := range items {
		lines = append(lines, gin.H{
			"id":         li.ID,
			"kind":       li.Kind,
			"label":      li.Label(),
			"quantity":   li.Quantity,
			"notes":      li.Notes,
			"pizza":      li.Pizza,
			"item_id":    li.ItemID,
			"unit_price": li.UnitPrice(),
			"total":      li.Total(),
		})
	}
	return gin.H{
		"items":      lines,
		"total":      ct.Total(),
		"item_count": ct.ItemCount(),
	}
}

// GetCart returns the current cart with per-line and total pricing
func (h *CartHandlers) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(h.current(c)))
}

type AddPizzaRequest struct {
	PizzaID       string   `json:"pizza_id" binding:"required"`
	SecondPizzaID string   `json:"second_pizza_id"`
	Size          string   `json:"size" binding:"required"`
	CrustID       string   `json:"crust_id"`
	ExtraIDs      []string `json:"extra_ids"`
	Notes         string   `json:"notes"`
	Quantity      int      `json:"quantity" binding:"required,min=1"`
}

// AddPizza appends a configured pizza to the cart. Each configuration
// is its own line, even when identical to an existing one.
func (h *CartHandlers) AddPizza(c *gin.Context) {
	var req AddPizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct := h.current(c)
	line, err := ct.AddPizza(cart.PizzaConfig{
		PizzaID:       req.PizzaID,
		SecondPizzaID: req.SecondPizzaID,
		Size:          catalog.PizzaSize(req.Size),
		CrustID:       req.CrustID,
		ExtraIDs:      req.ExtraIDs,
	}, req.Quantity, req.Notes)
	if err != nil {
		status := http.StatusBadRequest
		if !isCartValidationError(err) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"line": line, "cart": cartResponse(ct)})
}

type AddItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// AddBeverage adds a beverage, merging with an existing line for the
// same drink.
func (h *CartHandlers) AddBeverage(c *gin.Context) {
	h.addSimple(c, func(ct *cart.Cart, req AddItemRequest) (cart.LineItem, error) {
		return ct.AddBeverage(req.ItemID, req.Quantity)
	})
}

// AddDessert adds a dessert, merging with an existing line for the
// same dessert.
func (h *CartHandlers) AddDessert(c *gin.Context) {
	h.addSimple(c, func(ct *cart.Cart, req AddItemRequest) (cart.LineItem, error) {
		return ct.AddDessert(req.ItemID, req.Quantity)
	})
}

func (h *CartHandlers) addSimple(c *gin.Context, add func(*cart.Cart, AddItemRequest) (cart.LineItem, error)) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct := h.current(c)
	line, err := add(ct, req)
	if err != nil {
		status := http.StatusBadRequest
		if !isCartValidationError(err) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"line": line, "cart": cartResponse(ct)})
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem sets a line's quantity; zero or less removes the line
func (h *CartHandlers) UpdateItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct := h.current(c)
	if err := ct.UpdateQuantity(c.Param("lineId"), req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(ct))
}

// RemoveItem deletes a line; unknown ids are a no-op
func (h *CartHandlers) RemoveItem(c *gin.Context) {
	ct := h.current(c)
	if err := ct.RemoveItem(c.Param("lineId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(ct))
}

// ClearCart empties the cart
func (h *CartHandlers) ClearCart(c *gin.Context) {
	ct := h.current(c)
	if err := ct.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(ct))
}

func isCartValidationError(err error) bool {
	return errors.Is(err, cart.ErrUnknownPizza) ||
		errors.Is(err, cart.ErrUnknownBeverage) ||
		errors.Is(err, cart.ErrUnknownDessert) ||
		errors.Is(err, cart.ErrUnknownCrust) ||
		errors.Is(err, cart.ErrUnknownExtra) ||
		errors.Is(err, cart.ErrInvalidSize) ||
		errors.Is(err, cart.ErrInvalidQuantity)
}
