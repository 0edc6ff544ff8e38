package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-platform/models"
	"restaurant-platform/services"
	"restaurant-platform/utils"
)

type OrderController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Orders: services.NewOrderService(db)}
}

// CreateOrder places a storefront order against one restaurant.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	restaurant, err := findRestaurantBySlug(oc.DB, c.Param("slug"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.CreateOrder(*restaurant, req)
	if err != nil {
		utils.RespondError(c, orderErrorStatus(err), err)
		return
	}

	utils.InfoLogger.Printf("Order %s created for restaurant %s (total=%s)",
		order.OrderNumber, restaurant.Slug, order.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByToken lets a customer retrieve their order without logging in.
func (oc *OrderController) GetOrderByToken(c *gin.Context) {
	order, err := oc.Orders.GetByToken(c.Param("token"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders lists orders for the back office, newest first. Optional
// filters: ?restaurant_id= and ?status=.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("OrderItems").Preload("Customer").Order("created_at desc")
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID returns one order with items (back office).
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	err := oc.DB.Preload("OrderItems").Preload("Customer").
		First(&order, c.Param("order_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus moves an order through its lifecycle (back office).
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(id, req.Status)
	if err != nil {
		utils.RespondError(c, orderErrorStatus(err), err)
		return
	}

	utils.InfoLogger.Printf("Order %s status -> %s", order.OrderNumber, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func orderErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrMenuNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrPriceRequired),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrNegativeAmount),
		errors.Is(err, services.ErrPricingModeMismatch),
		errors.Is(err, services.ErrDistanceRequired),
		errors.Is(err, services.ErrInvalidOrderType),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrMenuUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
