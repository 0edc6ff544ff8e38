package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing preferences control display rank independent of category.
const (
	ListingHigh = "high"
	ListingMid  = "mid"
	ListingLow  = "low"
)

type Menu struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	CategoryID     uint            `gorm:"not null;index" json:"category_id"`
	Category       MenuCategory    `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PackagingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"packaging_price"`
	// DynamicPricing marks weight-sold items; Price is then a per-gram rate.
	DynamicPricing    bool      `gorm:"not null;default:false" json:"dynamic_pricing"`
	IsAvailable       bool      `gorm:"not null;default:true" json:"is_available"`
	ListingPreference string    `gorm:"type:varchar(10);not null;default:'mid'" json:"listing_preference"`
	ImageUrl          *string   `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}
