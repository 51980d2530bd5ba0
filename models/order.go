package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/visourastudio-blip/pizza-do-ze/cart"
)

// OrderStatus represents all possible states of a pizzeria order
type OrderStatus string

const (
	StatusReceived       OrderStatus = "received"
	StatusInPreparation  OrderStatus = "in_preparation"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
)

// FulfillmentType selects which status sequence an order follows
type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentPickup   FulfillmentType = "pickup"
)

// PaymentMethod is how the customer chose to pay
type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "pix"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCash   PaymentMethod = "cash"
)

// OrderLines stores the cart snapshot of an order as a JSON column
type OrderLines []cart.LineItem

func (l OrderLines) Value() (driver.Value, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *OrderLines) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported column type for order lines")
}

type Order struct {
	ID                uint                 `json:"id" gorm:"primaryKey"`
	CustomerID        uint                 `json:"customer_id" gorm:"not null"`
	Customer          User                 `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Items             OrderLines           `json:"items" gorm:"type:text;not null"`
	Fulfillment       FulfillmentType      `json:"fulfillment" gorm:"not null"`
	PaymentMethod     PaymentMethod        `json:"payment_method" gorm:"not null"`
	ChangeFor         *float64             `json:"change_for,omitempty"` // cash only: bill the customer pays with
	Total             float64              `json:"total" gorm:"not null"`
	Status            OrderStatus          `json:"status" gorm:"not null;default:'received'"`
	EstimatedDelivery *time.Time           `json:"estimated_delivery,omitempty"`
	StatusHistory     []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// OrderStatusHistory tracks every status change — audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
