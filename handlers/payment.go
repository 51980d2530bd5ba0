package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/visourastudio-blip/pizza-do-ze/config"
	"github.com/visourastudio-blip/pizza-do-ze/middleware"
	"github.com/visourastudio-blip/pizza-do-ze/models"
	"github.com/visourastudio-blip/pizza-do-ze/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandlers relays PIX charge requests to the billing provider.
// The provider confirms settlement on its own side; the customer
// reports payment manually, so no state here depends on the charge.
type PaymentHandlers struct {
	Pix *payment.Client
}

type CreatePixChargeRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required"`
	TaxID   string `json:"tax_id" binding:"required"`
	OrderID uint   `json:"order_id" binding:"required"`
}

// CreatePixCharge generates a scannable PIX charge for one of the
// customer's own orders.
func (h *PaymentHandlers) CreatePixCharge(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreatePixChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerID != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	if order.PaymentMethod != models.PaymentPix {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is not paid via PIX"})
		return
	}

	payer := payment.PayerInfo{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		TaxID: req.TaxID,
	}
	charge, err := h.Pix.CreateCharge(c.Request.Context(), payer, order.Total, orderRef(order.ID))
	if err != nil {
		if isPayerValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "PIX charge created",
		"charge":  charge,
	})
}

func orderRef(id uint) string {
	return "pizza-order-" + strconv.FormatUint(uint64(id), 10)
}

func isPayerValidationError(err error) bool {
	return errors.Is(err, payment.ErrNameTooShort) ||
		errors.Is(err, payment.ErrInvalidPhone) ||
		errors.Is(err, payment.ErrInvalidEmail) ||
		errors.Is(err, payment.ErrInvalidTaxID)
}
