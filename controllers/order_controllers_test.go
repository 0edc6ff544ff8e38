package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"restaurant-platform/models"
	"restaurant-platform/utils"
)

func orderRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := NewOrderController(db)
	r.POST("/restaurants/:slug/orders", ctrl.CreateOrder)
	r.GET("/orders/token/:token", ctrl.GetOrderByToken)
	r.GET("/admin/orders", ctrl.GetAllOrders)
	r.PATCH("/admin/orders/:order_id/status", ctrl.UpdateOrderStatus)
	return r
}

func orderPayload() map[string]interface{} {
	return map[string]interface{}{
		"customer": map[string]interface{}{
			"name":  "Ada",
			"phone": "+15550001111",
			"email": "ada@example.com",
		},
		"order_type":     "pickup",
		"payment_method": "card",
		"items": []map[string]interface{}{
			{"menu_id": 1, "quantity": 2},
			{"menu_id": 2, "quantity": 3},
		},
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := orderRouter(db)

	w := doJSON(t, r, http.MethodPost, "/restaurants/downtown/orders", orderPayload(), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	// 28*2 + 3.5*2 + 8*3 + 1*3 = 90
	assert.Equal(t, "90", data["total_amount"])
	assert.NotEmpty(t, data["order_number"])
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "pending", data["status"])
}

func TestCreateOrderEndpointUnknownRestaurant(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := orderRouter(db)

	w := doJSON(t, r, http.MethodPost, "/restaurants/nowhere/orders", orderPayload(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := orderRouter(db)

	payload := orderPayload()
	payload["items"] = []map[string]interface{}{{"menu_id": 1, "quantity": -1}}

	w := doJSON(t, r, http.MethodPost, "/restaurants/downtown/orders", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderByTokenEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := orderRouter(db)

	w := doJSON(t, r, http.MethodPost, "/restaurants/downtown/orders", orderPayload(), nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	token, _ := decodeData(t, w)["token"].(string)
	assert.NotEmpty(t, token)

	w = doJSON(t, r, http.MethodGet, "/orders/token/"+token, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	items, _ := data["order_items"].([]interface{})
	assert.Len(t, items, 2)

	w = doJSON(t, r, http.MethodGet, "/orders/token/bogus", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := orderRouter(db)

	w := doJSON(t, r, http.MethodPost, "/restaurants/downtown/orders", orderPayload(), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/admin/orders/1/status",
		map[string]interface{}{"status": "preparing"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	db.First(&order, 1)
	assert.Equal(t, models.OrderStatusPreparing, order.Status)

	w = doJSON(t, r, http.MethodPatch, "/admin/orders/1/status",
		map[string]interface{}{"status": "vaporized"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllOrdersFilters(t *testing.T) {
	db := setupTestDB(t)
	seedStorefront(t, db)
	r := orderRouter(db)

	doJSON(t, r, http.MethodPost, "/restaurants/downtown/orders", orderPayload(), nil)
	doJSON(t, r, http.MethodPost, "/restaurants/downtown/orders", orderPayload(), nil)

	w := doJSON(t, r, http.MethodGet, "/admin/orders?status=pending", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp utils.JSONResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orders, _ := resp.Data.([]interface{})
	assert.Len(t, orders, 2)

	w = doJSON(t, r, http.MethodGet, "/admin/orders?status=completed", nil, nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orders, _ = resp.Data.([]interface{})
	assert.Len(t, orders, 0)
}
