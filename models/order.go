package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	CustomerID   uint       `gorm:"not null;index" json:"customer_id"`
	Customer     Customer   `gorm:"foreignKey:CustomerID" json:"customer"`
	// OrderNumber is the human-readable identifier printed on tickets.
	OrderNumber string `gorm:"type:varchar(30);uniqueIndex;not null" json:"order_number"`
	// Token lets a customer retrieve the order without authenticating.
	Token         string           `gorm:"type:varchar(64);uniqueIndex;not null" json:"token"`
	OrderType     string           `gorm:"type:varchar(10);not null" json:"order_type"`
	PaymentMethod string           `gorm:"type:varchar(30);not null" json:"payment_method"`
	Status        string           `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal      decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0.00" json:"subtotal"`
	DeliveryFee   decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0.00" json:"delivery_fee"`
	TotalAmount   decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_amount"`
	DistanceKm    *decimal.Decimal `gorm:"type:decimal(8,2)" json:"distance_km,omitempty"`
	CreatedAt     time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"not null" json:"updated_at"`
	OrderItems    []OrderItem      `gorm:"foreignKey:OrderID" json:"order_items"`
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
