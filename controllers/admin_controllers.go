package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-platform/models"
	"restaurant-platform/services"
	"restaurant-platform/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats returns summary statistics for the back-office
// dashboard. Optional filters: ?restaurant_id=, ?from=YYYY-MM-DD and
// ?to=YYYY-MM-DD (UTC, inclusive range). The rows are fetched here; the
// arithmetic lives in services.AggregateDashboard.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	ordersQuery := ac.DB.Model(&models.Order{})
	reservationsQuery := ac.DB.Model(&models.Reservation{})
	itemsQuery := ac.DB.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id")

	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		ordersQuery = ordersQuery.Where("restaurant_id = ?", restaurantID)
		reservationsQuery = reservationsQuery.Where("restaurant_id = ?", restaurantID)
		itemsQuery = itemsQuery.Where("orders.restaurant_id = ?", restaurantID)
	}

	if from := c.Query("from"); from != "" {
		day, err := time.ParseInLocation("2006-01-02", from, time.UTC)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid from date"))
			return
		}
		ordersQuery = ordersQuery.Where("created_at >= ?", day)
		reservationsQuery = reservationsQuery.Where("date_time >= ?", day)
		itemsQuery = itemsQuery.Where("orders.created_at >= ?", day)
	}
	if to := c.Query("to"); to != "" {
		day, err := time.ParseInLocation("2006-01-02", to, time.UTC)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid to date"))
			return
		}
		end := day.Add(24 * time.Hour)
		ordersQuery = ordersQuery.Where("created_at < ?", end)
		reservationsQuery = reservationsQuery.Where("date_time < ?", end)
		itemsQuery = itemsQuery.Where("orders.created_at < ?", end)
	}

	var orders []models.Order
	if err := ordersQuery.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var reservations []models.Reservation
	if err := reservationsQuery.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var lineItems []services.ItemQuantity
	if err := itemsQuery.Select("order_items.name AS name, order_items.quantity AS quantity").
		Order("order_items.id asc").
		Scan(&lineItems).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	stats := services.AggregateDashboard(orders, reservations, lineItems, time.Now())
	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
