package order

import "context"

// Repository defines all database operations for orders.
type Repository interface {

	// Create persists the order as a single atomic write.
	Create(ctx context.Context, order *Order) error

	GetByID(ctx context.Context, orderID string) (*Order, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}
