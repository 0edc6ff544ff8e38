package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"restaurant-platform/models"
	"restaurant-platform/utils"
)

func menuRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	menuCtrl := NewMenuController(db)
	categoryCtrl := NewMenuCategoryController(db)
	r.GET("/restaurants/:slug/menus", menuCtrl.GetMenus)
	r.GET("/restaurants/:slug/categories", categoryCtrl.GetCategories)
	r.POST("/admin/menus", menuCtrl.CreateMenu)
	r.PUT("/admin/menus/:menu_id", menuCtrl.UpdateMenu)
	r.DELETE("/admin/menus/:menu_id", menuCtrl.DeleteMenu)
	return r
}

func listData(t *testing.T, body []byte) []map[string]interface{} {
	t.Helper()

	var resp utils.JSONResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	raw, _ := resp.Data.([]interface{})
	items := make([]map[string]interface{}, 0, len(raw))
	for _, entry := range raw {
		item, _ := entry.(map[string]interface{})
		items = append(items, item)
	}
	return items
}

func TestGetMenusRankedAndFiltered(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := menuRouter(db)

	w := doJSON(t, r, http.MethodGet, "/restaurants/downtown/menus", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	items := listData(t, w.Body.Bytes())
	// "Hidden Special" is unavailable; "Spring Rolls" outranks via high
	// listing preference.
	assert.Len(t, items, 2)
	assert.Equal(t, "Spring Rolls", items[0]["name"])
	assert.Equal(t, "Grilled Chicken", items[1]["name"])
}

func TestGetMenusInactiveCategoryHidden(t *testing.T) {
	db := setupTestDB(t)
	restaurant := seedStorefront(t, db)
	r := menuRouter(db)

	seasonal := models.MenuCategory{RestaurantID: restaurant.ID, Name: "Seasonal", DisplayOrder: 5, IsActive: false}
	db.Create(&seasonal)
	// gorm skips zero-valued fields that carry a default tag on insert, so
	// force the false through an explicit update.
	db.Model(&seasonal).Update("is_active", false)
	db.Create(&models.Menu{
		CategoryID:        seasonal.ID,
		Name:              "Pumpkin Soup",
		Price:             dec("12"),
		IsAvailable:       true,
		ListingPreference: models.ListingHigh,
	})

	w := doJSON(t, r, http.MethodGet, "/restaurants/downtown/menus", nil, nil)
	items := listData(t, w.Body.Bytes())
	for _, item := range items {
		assert.NotEqual(t, "Pumpkin Soup", item["name"])
	}
}

func TestCreateAndUpdateMenu(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := menuRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/menus", map[string]interface{}{
		"category_id":        1,
		"name":               "Lamb Skewers",
		"price":              "14.5",
		"packaging_price":    "0.5",
		"listing_preference": "high",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "high", data["listing_preference"])
	assert.Equal(t, true, data["is_available"])

	id := data["id"].(float64)
	w = doJSON(t, r, http.MethodPut, "/admin/menus/4", map[string]interface{}{
		"category_id":  1,
		"name":         "Lamb Skewers",
		"price":        "15",
		"is_available": false,
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu models.Menu
	db.First(&menu, uint(id))
	assert.False(t, menu.IsAvailable)
	assert.True(t, menu.Price.Equal(dec("15")))
	// Preference was omitted in the update and must survive.
	assert.Equal(t, models.ListingHigh, menu.ListingPreference)
}

func TestUpdateMenuImageLifecycle(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := menuRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/menus", map[string]interface{}{
		"category_id": 1,
		"name":        "Pho",
		"price":       "11",
		"image_url":   "https://cdn.example.com/pho.png",
	}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeData(t, w)["id"].(float64))
	path := fmt.Sprintf("/admin/menus/%d", id)

	// Omitting image_url keeps the existing image.
	w = doJSON(t, r, http.MethodPut, path, map[string]interface{}{
		"category_id": 1,
		"name":        "Pho",
		"price":       "12",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var menu models.Menu
	db.First(&menu, id)
	if assert.NotNil(t, menu.ImageUrl) {
		assert.Equal(t, "https://cdn.example.com/pho.png", *menu.ImageUrl)
	}

	// An explicit empty string clears it.
	w = doJSON(t, r, http.MethodPut, path, map[string]interface{}{
		"category_id": 1,
		"name":        "Pho",
		"price":       "12",
		"image_url":   "",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	menu = models.Menu{}
	db.First(&menu, id)
	assert.Nil(t, menu.ImageUrl)
}

func TestCreateMenuRejectsBadPreference(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := menuRouter(db)

	w := doJSON(t, r, http.MethodPost, "/admin/menus", map[string]interface{}{
		"category_id":        1,
		"name":               "Mystery Dish",
		"price":              "9",
		"listing_preference": "top",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategoriesOrdered(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := menuRouter(db)

	w := doJSON(t, r, http.MethodGet, "/restaurants/downtown/categories", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	categories := listData(t, w.Body.Bytes())
	assert.Len(t, categories, 2)
	assert.Equal(t, "Starters", categories[0]["name"])
	assert.Equal(t, "Mains", categories[1]["name"])
}
