package catalog

import "context"

// Repository defines all database operations for the product catalog.
type Repository interface {

	// -------------------------------
	// Categories
	// -------------------------------

	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context, companyID string) ([]*Category, error)
	UpdateCategory(ctx context.Context, category *Category) error
	DeleteCategory(ctx context.Context, categoryID string) error

	// -------------------------------
	// Products
	// -------------------------------

	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, productID string) (*Product, error)
	ListProducts(ctx context.Context, companyID string) ([]*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, productID string) error

	// Denormalized promotion fields, kept in sync by the promotion sweeper.
	SetPromotion(
		ctx context.Context,
		productID string,
		isPromotion bool,
		promotionalPrice float64,
	) error
}
