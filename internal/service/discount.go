package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/coupon-feed-service/internal/models"
)

const (
	// UnsetMarker is shown when a row carries no discount rate.
	UnsetMarker = "未設定"
	// ErrorMarker is shown when the rate is outside 0-100%.
	ErrorMarker = "エラー"

	// HighDiscountThreshold is the percentage at which a row is emphasized.
	HighDiscountThreshold = 15.0
)

var hundred = decimal.NewFromInt(100)

type DiscountDisplay struct {
	Formatted string
	IsHigh    bool
}

// DataAnomalyError describes feed data that cannot be displayed as-is.
// It never reaches the client; the affected cell degrades to a marker.
type DataAnomalyError struct {
	Coupon string
	Rate   float64
}

func (e *DataAnomalyError) Error() string {
	return fmt.Sprintf("coupon %q: discount rate %v%% out of range", e.Coupon, e.Rate)
}

// DeriveDiscountDisplay formats the discount rate of item as a percentage.
// Every input maps to a value.
func DeriveDiscountDisplay(item models.CouponItem) DiscountDisplay {
	d, _ := deriveDiscount(item)
	return d
}

func deriveDiscount(item models.CouponItem) (DiscountDisplay, error) {
	if item.DiscountRate == nil {
		return DiscountDisplay{Formatted: UnsetMarker}, nil
	}

	rate := *item.DiscountRate * 100
	if math.IsNaN(rate) || rate < 0 || rate > 100 {
		return DiscountDisplay{Formatted: ErrorMarker}, &DataAnomalyError{Coupon: item.Coupon, Rate: rate}
	}

	formatted := decimal.NewFromFloat(*item.DiscountRate).Mul(hundred).StringFixed(1) + "%"
	return DiscountDisplay{
		Formatted: formatted,
		IsHigh:    rate >= HighDiscountThreshold,
	}, nil
}
