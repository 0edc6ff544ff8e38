package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant-platform/models"
	"restaurant-platform/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants lists active locations for the storefront.
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := rc.DB.Where("is_active = ?", true).Order("name asc").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

type restaurantRequest struct {
	Name     string           `json:"name" binding:"required"`
	Slug     string           `json:"slug" binding:"required"`
	Address  string           `json:"address"`
	Phone    string           `json:"phone"`
	FeePerKm *decimal.Decimal `json:"fee_per_km"`
	IsActive *bool            `json:"is_active"`
}

// CreateRestaurant registers a new location (admin only).
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		Name:     req.Name,
		Slug:     req.Slug,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}
	if req.FeePerKm != nil {
		restaurant.FeePerKm = *req.FeePerKm
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}

	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// UpdateRestaurant edits a location (admin only).
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, c.Param("restaurant_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrRestaurantNotFound)
		return
	}

	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant.Name = req.Name
	restaurant.Slug = req.Slug
	restaurant.Address = req.Address
	restaurant.Phone = req.Phone
	if req.FeePerKm != nil {
		restaurant.FeePerKm = *req.FeePerKm
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// findRestaurantBySlug is shared by the public storefront handlers.
func findRestaurantBySlug(db *gorm.DB, slug string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := db.Where("slug = ? AND is_active = ?", slug, true).First(&restaurant).Error
	if err != nil {
		return nil, ErrRestaurantNotFound
	}
	return &restaurant, nil
}
