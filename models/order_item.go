package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem snapshots menu pricing at order time. Once created its price
// fields never change, even if the live Menu price does.
type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuID  uint  `gorm:"not null" json:"menu_id"`
	Menu    Menu  `gorm:"foreignKey:MenuID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	// Name is copied from the menu so tickets survive later renames.
	Name           string           `gorm:"type:varchar(255);not null" json:"name"`
	Quantity       int              `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	WeightGrams    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"weight_grams,omitempty"`
	PackagingPrice decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0.00" json:"packaging_price"`
	TotalPrice     decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"total_price"`
	Notes          string           `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null" json:"updated_at"`
}
