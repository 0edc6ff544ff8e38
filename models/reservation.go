package models

import "time"

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
	ReservationStatusCompleted = "completed"
)

type Reservation struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	RestaurantID  uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant    Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	CustomerName  string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone string     `gorm:"type:varchar(30);not null" json:"customer_phone"`
	CustomerEmail string     `gorm:"type:varchar(255)" json:"customer_email"`
	DateTime      time.Time  `gorm:"not null;index" json:"date_time"`
	PartySize     int        `gorm:"not null" json:"party_size"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}

func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCancelled, ReservationStatusCompleted:
		return true
	}
	return false
}
