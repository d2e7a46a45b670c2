package coupon

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCoupon = errors.New("cupom inválido")
	ErrExpiredCoupon = errors.New("cupom expirado ou esgotado")
	ErrWrongCompany  = errors.New("cupom não é válido para este estabelecimento")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// --------------------------------------------------
// Validate (PUBLIC, called from the cart)
// --------------------------------------------------

// Validate checks code existence, company scope, validity window and
// redemption limit, and returns the coupon on success.
func (s *Service) Validate(
	ctx context.Context,
	code string,
	companyID string,
) (*Coupon, error) {

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidCoupon
	}

	coupon, err := s.repo.FindByCode(ctx, code)
	if errors.Is(err, ErrCouponNotFound) {
		return nil, ErrInvalidCoupon
	}
	if err != nil {
		return nil, err
	}

	if !coupon.AppliesTo(companyID) {
		return nil, ErrWrongCompany
	}
	if !coupon.ValidAt(s.now()) {
		return nil, ErrExpiredCoupon
	}

	return coupon, nil
}

// Redeem bumps the usage counter after a successful checkout.
func (s *Service) Redeem(ctx context.Context, couponID string) error {
	return s.repo.IncrementUsage(ctx, couponID)
}

// --------------------------------------------------
// Dashboard CRUD
// --------------------------------------------------

func (s *Service) Create(ctx context.Context, coupon *Coupon) error {
	if coupon.Code == "" {
		return errors.New("coupon code is required")
	}
	if coupon.Type != TypePercentage && coupon.Type != TypeFlat {
		return errors.New("coupon type must be PERCENTAGE or FLAT")
	}
	if coupon.Value <= 0 {
		return errors.New("coupon value must be positive")
	}
	if coupon.ValidUntil.Before(coupon.ValidFrom) {
		return errors.New("coupon validity window is inverted")
	}

	coupon.ID = uuid.New().String()
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	return s.repo.Create(ctx, coupon)
}

func (s *Service) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Coupon, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *Service) Deactivate(ctx context.Context, couponID string) error {
	return s.repo.Deactivate(ctx, couponID)
}
