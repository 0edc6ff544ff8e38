package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-platform/events"
	"restaurant-platform/models"
)

var (
	ErrMenuNotFound    = errors.New("menu item not found")
	ErrMenuUnavailable = errors.New("menu item is not available")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid status")
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

type OrderItemRequest struct {
	MenuID      uint             `json:"menu_id" binding:"required"`
	Quantity    int              `json:"quantity" binding:"required"`
	WeightGrams *decimal.Decimal `json:"weight_grams,omitempty"`
	Notes       string           `json:"notes"`
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateOrderRequest struct {
	Customer      CustomerRequest    `json:"customer" binding:"required"`
	OrderType     string             `json:"order_type" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
	DistanceKm    *decimal.Decimal   `json:"distance_km,omitempty"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// CreateOrder prices the cart, deduplicates the customer by phone, and
// persists the order with per-item price snapshots in one transaction.
// Item prices are rounded to two decimals at this point and never change
// afterwards, even if the live menu price does.
func (s *OrderService) CreateOrder(restaurant models.Restaurant, req CreateOrderRequest) (*models.Order, error) {
	menus := make(map[uint]models.Menu, len(req.Items))
	lines := make([]PriceLine, 0, len(req.Items))

	for _, item := range req.Items {
		menu, ok := menus[item.MenuID]
		if !ok {
			if err := s.DB.First(&menu, item.MenuID).Error; err != nil {
				return nil, ErrMenuNotFound
			}
			menus[item.MenuID] = menu
		}
		if !menu.IsAvailable {
			return nil, ErrMenuUnavailable
		}
		lines = append(lines, PriceLine{
			UnitPrice:      menu.Price,
			PackagingPrice: menu.PackagingPrice,
			Quantity:       item.Quantity,
			WeightGrams:    item.WeightGrams,
			WeightPriced:   menu.DynamicPricing,
		})
	}

	quote, err := PriceCart(lines, req.OrderType, req.DistanceKm, restaurant.FeePerKm)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := models.Order{
		RestaurantID:  restaurant.ID,
		OrderNumber:   newOrderNumber(now),
		Token:         uuid.NewString(),
		OrderType:     req.OrderType,
		PaymentMethod: req.PaymentMethod,
		Status:        models.OrderStatusPending,
		DistanceKm:    req.DistanceKm,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Persisted amounts carry two decimals; the subtotal is rebuilt from the
	// rounded line totals so total_amount always equals their sum plus the
	// delivery fee.
	subtotal := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for i, item := range req.Items {
		menu := menus[item.MenuID]
		lineTotal := quote.Lines[i].Total.Round(2)
		subtotal = subtotal.Add(lineTotal)
		orderItems = append(orderItems, models.OrderItem{
			MenuID:         menu.ID,
			Name:           menu.Name,
			Quantity:       item.Quantity,
			UnitPrice:      menu.Price,
			WeightGrams:    item.WeightGrams,
			PackagingPrice: menu.PackagingPrice,
			TotalPrice:     lineTotal,
			Notes:          item.Notes,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	order.Subtotal = subtotal
	order.DeliveryFee = quote.DeliveryFee.Round(2)
	order.TotalAmount = subtotal.Add(order.DeliveryFee)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		customer, err := upsertCustomer(tx, req.Customer)
		if err != nil {
			return err
		}
		order.CustomerID = customer.ID

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
			if err := tx.Create(&orderItems[i]).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Customer{}).
			Where("id = ?", customer.ID).
			UpdateColumns(map[string]interface{}{
				"total_orders": gorm.Expr("total_orders + 1"),
				"total_spent":  gorm.Expr("total_spent + ?", order.TotalAmount),
				"updated_at":   now,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	order.OrderItems = orderItems
	events.Publish(events.EventOrderCreated, order)
	return &order, nil
}

// upsertCustomer deduplicates on phone with a single conflict-handling
// insert, so concurrent identical submissions cannot create duplicates.
func upsertCustomer(tx *gorm.DB, req CustomerRequest) (*models.Customer, error) {
	now := time.Now().UTC()
	customer := models.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":       req.Name,
			"updated_at": now,
		}),
	}).Create(&customer).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the ID is populated on the conflict path too.
	if err := tx.Where("phone = ?", req.Phone).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateStatus writes a new order status and broadcasts the change.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		return nil, ErrOrderNotFound
	}

	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	if err := s.DB.Save(&order).Error; err != nil {
		return nil, err
	}

	events.Publish(events.EventOrderStatusChanged, order)
	return &order, nil
}

// GetByToken fetches an order by its opaque retrieval token; no auth needed.
func (s *OrderService) GetByToken(token string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("OrderItems").Preload("Customer").
		Where("token = ?", token).First(&order).Error
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}

func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix[:6])
}
