package handlers

import (
	"net/http"
	"time"

	"github.com/visourastudio-blip/pizza-do-ze/cart"
	"github.com/visourastudio-blip/pizza-do-ze/config"
	"github.com/visourastudio-blip/pizza-do-ze/middleware"
	"github.com/visourastudio-blip/pizza-do-ze/models"
	"github.com/visourastudio-blip/pizza-do-ze/statemachine"

	"github.com/gin-gonic/gin"
)

// deliveryEstimate is how far ahead the kitchen promises a delivery.
const deliveryEstimate = 50 * time.Minute

// OrderHandlers turns a customer's cart into orders and reports on
// their lifecycle.
type OrderHandlers struct {
	Carts *cart.Manager
}

type CheckoutRequest struct {
	Fulfillment   models.FulfillmentType `json:"fulfillment" binding:"required"`
	PaymentMethod models.PaymentMethod   `json:"payment_method" binding:"required"`
	ChangeFor     *float64               `json:"change_for"`
}

// Checkout snapshots the cart into a new order with status received.
// The cart is cleared once the order row is stored.
func (h *OrderHandlers) Checkout(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Fulfillment {
	case models.FulfillmentDelivery, models.FulfillmentPickup:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "fulfillment must be 'delivery' or 'pickup'"})
		return
	}
	switch req.PaymentMethod {
	case models.PaymentPix, models.PaymentCredit, models.PaymentDebit, models.PaymentCash:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method must be one of pix, credit, debit, cash"})
		return
	}
	if req.ChangeFor != nil && req.PaymentMethod != models.PaymentCash {
		c.JSON(http.StatusBadRequest, gin.H{"error": "change_for only applies to cash payments"})
		return
	}

	ct := h.Carts.Get(cartKey(customerID))
	items := ct.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	var estimated *time.Time
	if req.Fulfillment == models.FulfillmentDelivery {
		t := time.Now().Add(deliveryEstimate)
		estimated = &t
	}

	order := models.Order{
		CustomerID:        customerID,
		Items:             models.OrderLines(items),
		Fulfillment:       req.Fulfillment,
		PaymentMethod:     req.PaymentMethod,
		ChangeFor:         req.ChangeFor,
		Total:             ct.Total(),
		Status:            models.StatusReceived,
		EstimatedDelivery: estimated,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// Record initial status history
	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusReceived,
		ChangedBy: customerID,
		Note:      "Order placed by customer",
	}
	config.DB.Create(&history)

	// The order exists either way; a failed clear only means the stored
	// snapshot is rewritten on the next cart mutation.
	_ = ct.Clear()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetMyOrders returns the customer's orders, newest first
func (h *OrderHandlers) GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.
		Where("customer_id = ?", customerID).
		Order("created_at desc, id desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order with its status history and
// lifecycle progress
func (h *OrderHandlers) GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("StatusHistory").
		First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    order,
		"progress": statemachine.Progress(order.Fulfillment, order.Status),
		"steps":    statemachine.Sequence(order.Fulfillment),
	})
}
