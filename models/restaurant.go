package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	// Slug identifies the location in storefront URLs.
	Slug      string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Address   string          `gorm:"type:varchar(255)" json:"address"`
	Phone     string          `gorm:"type:varchar(30)" json:"phone"`
	FeePerKm  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"fee_per_km"`
	IsActive  bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}
