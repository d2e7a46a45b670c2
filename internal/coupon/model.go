package coupon

import "time"

// Discount types mirror the deal types used on the dashboard.
const (
	TypePercentage = "PERCENTAGE"
	TypeFlat       = "FLAT"
)

type Coupon struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id,omitempty"` // empty = global coupon
	Code      string `json:"code"`

	Type  string  `json:"type"` // PERCENTAGE | FLAT
	Value float64 `json:"value"`

	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`

	UsageLimit int  `json:"usage_limit"` // 0 = unlimited
	UsedCount  int  `json:"used_count"`
	IsActive   bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

// AppliesTo reports whether the coupon is scoped to the company or global.
func (c *Coupon) AppliesTo(companyID string) bool {
	return c.CompanyID == "" || c.CompanyID == companyID
}

// ValidAt reports whether the coupon is active, inside its window and under
// its redemption limit.
func (c *Coupon) ValidAt(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	return true
}

// DiscountFor computes the discount against a pre-coupon subtotal, capped so
// the resulting total never goes negative.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch c.Type {
	case TypePercentage:
		discount = subtotal * c.Value / 100
	case TypeFlat:
		discount = c.Value
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}
