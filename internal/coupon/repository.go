package coupon

import "context"

// Repository defines all database operations for coupons.
type Repository interface {
	Create(ctx context.Context, coupon *Coupon) error
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Coupon, error)
	IncrementUsage(ctx context.Context, couponID string) error
	Deactivate(ctx context.Context, couponID string) error
}
