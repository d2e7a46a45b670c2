package company

import "context"

// Repository defines all database operations for companies.
type Repository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, companyID string) (*Company, error)
	GetBySlug(ctx context.Context, slug string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	ListAll(ctx context.Context) ([]*Company, error)
}
