package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"restaurant-platform/models"
)

var (
	ErrPriceRequired       = errors.New("menu item price required")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
	ErrNegativeAmount      = errors.New("negative amounts are not allowed")
	ErrPricingModeMismatch = errors.New("pricing mode mismatch")
	ErrDistanceRequired    = errors.New("delivery distance required")
	ErrInvalidOrderType    = errors.New("order type must be pickup or delivery")
)

// PriceLine is one cart line as billed. For weight-priced items UnitPrice is
// a per-gram rate and WeightGrams must be set; for fixed-price items it must
// not be.
type PriceLine struct {
	UnitPrice      decimal.Decimal
	PackagingPrice decimal.Decimal
	Quantity       int
	WeightGrams    *decimal.Decimal
	WeightPriced   bool
}

type PricedLine struct {
	Base      decimal.Decimal `json:"line_base"`
	Packaging decimal.Decimal `json:"line_packaging"`
	Total     decimal.Decimal `json:"line_total"`
}

type PriceQuote struct {
	Lines       []PricedLine    `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// PriceCart converts a cart into billable line amounts and a grand total.
// All arithmetic stays in decimal; two-decimal rounding is left to the point
// of persistence or display. The result is deterministic and never negative:
// invalid inputs are rejected, not clamped.
func PriceCart(lines []PriceLine, orderType string, distanceKm *decimal.Decimal, feePerKm decimal.Decimal) (*PriceQuote, error) {
	if orderType != models.OrderTypePickup && orderType != models.OrderTypeDelivery {
		return nil, ErrInvalidOrderType
	}

	quote := &PriceQuote{
		Subtotal:    decimal.Zero,
		DeliveryFee: decimal.Zero,
	}

	for _, line := range lines {
		priced, err := priceLine(line)
		if err != nil {
			return nil, err
		}
		quote.Lines = append(quote.Lines, priced)
		quote.Subtotal = quote.Subtotal.Add(priced.Total)
	}

	if orderType == models.OrderTypeDelivery {
		if distanceKm == nil {
			return nil, ErrDistanceRequired
		}
		if distanceKm.IsNegative() || feePerKm.IsNegative() {
			return nil, ErrNegativeAmount
		}
		// Ceiling, not nearest: fractional distances never under-charge.
		quote.DeliveryFee = distanceKm.Mul(feePerKm).Ceil()
	}

	quote.Total = quote.Subtotal.Add(quote.DeliveryFee)
	return quote, nil
}

func priceLine(line PriceLine) (PricedLine, error) {
	if line.UnitPrice.IsZero() {
		return PricedLine{}, ErrPriceRequired
	}
	if line.UnitPrice.IsNegative() || line.PackagingPrice.IsNegative() {
		return PricedLine{}, ErrNegativeAmount
	}
	if line.Quantity < 1 {
		return PricedLine{}, ErrInvalidQuantity
	}
	if line.WeightPriced != (line.WeightGrams != nil) {
		return PricedLine{}, ErrPricingModeMismatch
	}

	effective := line.UnitPrice
	if line.WeightPriced {
		if line.WeightGrams.IsNegative() {
			return PricedLine{}, ErrNegativeAmount
		}
		effective = line.UnitPrice.Mul(*line.WeightGrams)
	}

	qty := decimal.NewFromInt(int64(line.Quantity))
	base := effective.Mul(qty)
	packaging := line.PackagingPrice.Mul(qty)

	return PricedLine{
		Base:      base,
		Packaging: packaging,
		Total:     base.Add(packaging),
	}, nil
}
