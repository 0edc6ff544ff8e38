package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"phone"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	TotalOrders int             `gorm:"not null;default:0" json:"total_orders"`
	TotalSpent  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0.00" json:"total_spent"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}
