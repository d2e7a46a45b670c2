package coupon

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	coupons map[string]*Coupon // keyed by upper-cased code
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{coupons: make(map[string]*Coupon)}
}

func (r *InMemoryRepository) Create(ctx context.Context, coupon *Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	coupon.Code = strings.ToUpper(coupon.Code)
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *InMemoryRepository) FindByCode(
	ctx context.Context,
	code string,
) (*Coupon, error) {
	coupon, ok := r.coupons[strings.ToUpper(code)]
	if !ok {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

func (r *InMemoryRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Coupon, error) {
	var coupons []*Coupon
	for _, c := range r.coupons {
		if c.CompanyID == companyID {
			coupons = append(coupons, c)
		}
	}
	return coupons, nil
}

func (r *InMemoryRepository) IncrementUsage(
	ctx context.Context,
	couponID string,
) error {
	for _, c := range r.coupons {
		if c.ID == couponID {
			c.UsedCount++
			return nil
		}
	}
	return ErrCouponNotFound
}

func (r *InMemoryRepository) Deactivate(
	ctx context.Context,
	couponID string,
) error {
	for _, c := range r.coupons {
		if c.ID == couponID {
			c.IsActive = false
			return nil
		}
	}
	return ErrCouponNotFound
}
