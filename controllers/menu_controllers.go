package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"restaurant-platform/events"
	"restaurant-platform/models"
	"restaurant-platform/services"
	"restaurant-platform/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenus returns the storefront menu of one restaurant in display order:
// available items of active categories, ranked by listing preference.
func (mc *MenuController) GetMenus(c *gin.Context) {
	restaurant, err := findRestaurantBySlug(mc.DB, c.Param("slug"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var menus []models.Menu
	err = mc.DB.Preload("Category").
		Joins("JOIN menu_categories ON menu_categories.id = menus.category_id").
		Where("menu_categories.restaurant_id = ?", restaurant.ID).
		Find(&menus).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of menus", services.RankMenus(menus))
}

type menuRequest struct {
	CategoryID        uint             `json:"category_id" binding:"required"`
	Name              string           `json:"name" binding:"required"`
	Description       string           `json:"description"`
	Price             decimal.Decimal  `json:"price" binding:"required"`
	PackagingPrice    *decimal.Decimal `json:"packaging_price"`
	DynamicPricing    bool             `json:"dynamic_pricing"`
	IsAvailable       *bool            `json:"is_available"`
	ListingPreference string           `json:"listing_preference" binding:"omitempty,oneof=high mid low"`
	ImageUrl          *string          `json:"image_url"`
}

// CreateMenu adds a menu item (admin only).
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu := models.Menu{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		DynamicPricing:    req.DynamicPricing,
		IsAvailable:       true,
		ListingPreference: models.ListingMid,
		ImageUrl:          req.ImageUrl,
	}
	if req.PackagingPrice != nil {
		menu.PackagingPrice = *req.PackagingPrice
	}
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}
	if req.ListingPreference != "" {
		menu.ListingPreference = req.ListingPreference
	}

	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Publish(events.EventMenuUpdated, menu)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// GetMenuByID returns one menu item with its category (admin only).
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	var menu models.Menu
	if err := mc.DB.Preload("Category").First(&menu, c.Param("menu_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// UpdateMenu edits a menu item (admin only). Existing order items keep
// their snapshotted prices regardless.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var menu models.Menu
	if err := mc.DB.First(&menu, c.Param("menu_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu.CategoryID = req.CategoryID
	menu.Name = req.Name
	menu.Description = req.Description
	menu.Price = req.Price
	menu.DynamicPricing = req.DynamicPricing
	if req.PackagingPrice != nil {
		menu.PackagingPrice = *req.PackagingPrice
	}
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}
	if req.ListingPreference != "" {
		menu.ListingPreference = req.ListingPreference
	}
	if req.ImageUrl != nil {
		// An explicit empty string clears the image; omitting the field
		// leaves it unchanged.
		if *req.ImageUrl == "" {
			menu.ImageUrl = nil
		} else {
			menu.ImageUrl = req.ImageUrl
		}
	}

	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.Publish(events.EventMenuUpdated, menu)
	utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
}

// DeleteMenu removes a menu item (admin only). Items referenced by orders
// are protected by the foreign key and report a conflict.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	var menu models.Menu
	if err := mc.DB.First(&menu, c.Param("menu_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := mc.DB.Delete(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu deleted", nil)
}
