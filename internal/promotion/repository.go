package promotion

import "context"

// Repository defines all database operations for promotions.
type Repository interface {
	Create(ctx context.Context, promotion *Promotion) error
	ListByCompany(ctx context.Context, companyID string) ([]*Promotion, error)
	ListByProduct(ctx context.Context, productID string) ([]*Promotion, error)

	// ListPromotedProductIDs returns every product that has at least one
	// promotion row, in effect or not; the sweeper re-resolves each one.
	ListPromotedProductIDs(ctx context.Context) ([]string, error)

	SetActive(ctx context.Context, promotionID string, active bool) error
	Delete(ctx context.Context, promotionID string) error
}
