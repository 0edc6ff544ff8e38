package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-platform/events"
	"restaurant-platform/models"
	"restaurant-platform/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

// CreateReservation books a table at one restaurant (public).
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	restaurant, err := findRestaurantBySlug(rc.DB, c.Param("slug"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		CustomerName  string    `json:"customer_name" binding:"required"`
		CustomerPhone string    `json:"customer_phone" binding:"required"`
		CustomerEmail string    `json:"customer_email" binding:"omitempty,email"`
		DateTime      time.Time `json:"date_time" binding:"required"`
		PartySize     int       `json:"party_size" binding:"required,min=1"`
		Notes         string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.DateTime.Before(time.Now()) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("reservation time must be in the future"))
		return
	}

	reservation := models.Reservation{
		RestaurantID:  restaurant.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		DateTime:      req.DateTime,
		PartySize:     req.PartySize,
		Status:        models.ReservationStatusPending,
		Notes:         req.Notes,
	}
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Publish(events.EventReservationCreated, reservation)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetAllReservations lists reservations for the back office. Optional
// filters: ?restaurant_id=, ?status= and ?date=YYYY-MM-DD (UTC day).
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Order("date_time asc")
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date, expected YYYY-MM-DD"))
			return
		}
		query = query.Where("date_time >= ? AND date_time < ?", day, day.Add(24*time.Hour))
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// UpdateReservationStatus confirms, cancels or completes a reservation.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidReservationStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid status"))
		return
	}

	reservation.Status = req.Status
	if err := rc.DB.Save(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Publish(events.EventReservationStatusChanged, reservation)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}
