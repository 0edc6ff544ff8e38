package services

import (
	"time"

	"github.com/shopspring/decimal"

	"restaurant-platform/models"
)

// NoPopularItemData is reported when there are no line items to rank.
const NoPopularItemData = "No data available"

// ItemQuantity is one order-line row as fed to the aggregator.
type ItemQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type DashboardStats struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TotalReservations int             `json:"total_reservations"`
	MostPopularItem   string          `json:"most_popular_item"`
	TodayOrders       int             `json:"today_orders"`
	TodayReservations int             `json:"today_reservations"`
}

// AggregateDashboard computes summary statistics over rows the caller has
// already fetched and filtered. Pure, no side effects; empty inputs yield
// zero values, never errors. "Today" is the UTC calendar day containing now.
func AggregateDashboard(orders []models.Order, reservations []models.Reservation, lineItems []ItemQuantity, now time.Time) DashboardStats {
	stats := DashboardStats{
		TotalOrders:       len(orders),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		TotalReservations: len(reservations),
		MostPopularItem:   NoPopularItemData,
	}

	dayStart := now.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	for _, order := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalAmount)
		if inWindow(order.CreatedAt, dayStart, dayEnd) {
			stats.TodayOrders++
		}
	}
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue.
			Div(decimal.NewFromInt(int64(stats.TotalOrders))).Round(2)
	}

	for _, res := range reservations {
		if inWindow(res.DateTime, dayStart, dayEnd) {
			stats.TodayReservations++
		}
	}

	// Highest summed quantity wins; ties go to the first name encountered.
	totals := make(map[string]int, len(lineItems))
	var names []string
	for _, item := range lineItems {
		if _, seen := totals[item.Name]; !seen {
			names = append(names, item.Name)
		}
		totals[item.Name] += item.Quantity
	}
	best := -1
	for _, name := range names {
		if totals[name] > best {
			best = totals[name]
			stats.MostPopularItem = name
		}
	}

	return stats
}

func inWindow(t, start, end time.Time) bool {
	t = t.UTC()
	return !t.Before(start) && t.Before(end)
}
