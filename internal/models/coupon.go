package models

// CouponItem is one row of the coupon feed. Prices keep the text they arrived
// with; numeric normalization happens only where rows are compared.
type CouponItem struct {
	Coupon             string            `json:"coupon"`
	CouponURL          string            `json:"couponUrl,omitempty"`
	OrderPrice         string            `json:"orderPrice"`
	DiscountPrice      string            `json:"discountPrice"`
	DiscountRate       *float64          `json:"discountRate,omitempty"`
	ValidPeriod        *string           `json:"validPeriod,omitempty"`
	ValidPeriodDetails map[string]string `json:"validPeriodDetails,omitempty"`

	// Source columns forwarded by the producer; stored, not rendered.
	DiscountAmountInDollar string `json:"discountAmountInDollar,omitempty"`
	DiscountAmountInYen    string `json:"discountAmountInYen,omitempty"`
}

// HasCode reports whether the row carries a coupon code and is eligible for
// display. "0" counts as no code.
func (c CouponItem) HasCode() bool {
	return c.Coupon != "" && c.Coupon != "0"
}
