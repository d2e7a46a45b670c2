package promotion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ProductWriter is the slice of the catalog the promotion engine writes:
// the product's denormalized is_promotion/promotional_price pair.
type ProductWriter interface {
	SetPromotion(
		ctx context.Context,
		productID string,
		isPromotion bool,
		promotionalPrice float64,
	) error
}

type Service struct {
	repo     Repository
	products ProductWriter
	now      func() time.Time
}

func NewService(repo Repository, products ProductWriter) *Service {
	return &Service{repo: repo, products: products, now: time.Now}
}

// --------------------------------------------------
// Dashboard CRUD
// --------------------------------------------------

func (s *Service) Create(ctx context.Context, promotion *Promotion) error {
	if promotion.ProductID == "" {
		return errors.New("promotion requires a product")
	}
	if promotion.PromotionalPrice <= 0 {
		return errors.New("promotional price must be positive")
	}
	if promotion.PromotionalPrice >= promotion.OriginalPrice {
		return errors.New("promotional price must be below the original price")
	}
	if promotion.EndDate.Before(promotion.StartDate) {
		return errors.New("promotion window is inverted")
	}

	promotion.ID = uuid.New().String()
	promotion.IsActive = true

	if err := s.repo.Create(ctx, promotion); err != nil {
		return err
	}

	// Keep the product's denormalized fields in step right away.
	return s.ResolveProduct(ctx, promotion.ProductID)
}

func (s *Service) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Promotion, error) {
	return s.repo.ListByCompany(ctx, companyID)
}

func (s *Service) SetActive(
	ctx context.Context,
	promotionID string,
	productID string,
	active bool,
) error {
	if err := s.repo.SetActive(ctx, promotionID, active); err != nil {
		return err
	}
	return s.ResolveProduct(ctx, productID)
}

func (s *Service) Delete(
	ctx context.Context,
	promotionID string,
	productID string,
) error {
	if err := s.repo.Delete(ctx, promotionID); err != nil {
		return err
	}
	return s.ResolveProduct(ctx, productID)
}

// --------------------------------------------------
// Denormalization
// --------------------------------------------------

// ResolveProduct re-derives a product's is_promotion/promotional_price pair
// from its promotion rows: the most recently created in-effect promotion
// wins; with none, the product falls back to its list price.
func (s *Service) ResolveProduct(ctx context.Context, productID string) error {
	promotions, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	if winner := Winner(promotions, s.now()); winner != nil {
		return s.products.SetPromotion(ctx, productID, true, winner.PromotionalPrice)
	}
	return s.products.SetPromotion(ctx, productID, false, 0)
}

// Sweep re-resolves every product that has promotion rows, so windows that
// opened or expired since the last pass are reflected in the catalog.
func (s *Service) Sweep(ctx context.Context) error {
	ids, err := s.repo.ListPromotedProductIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.ResolveProduct(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
