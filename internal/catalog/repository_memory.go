package catalog

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	categories map[string]*Category
	products   map[string]*Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		categories: make(map[string]*Category),
		products:   make(map[string]*Product),
	}
}

func (r *InMemoryRepository) CreateCategory(
	ctx context.Context,
	category *Category,
) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *InMemoryRepository) ListCategories(
	ctx context.Context,
	companyID string,
) ([]*Category, error) {
	var categories []*Category
	for _, c := range r.categories {
		if c.CompanyID == companyID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return categories, nil
}

func (r *InMemoryRepository) UpdateCategory(
	ctx context.Context,
	category *Category,
) error {
	r.categories[category.ID] = category
	return nil
}

func (r *InMemoryRepository) DeleteCategory(
	ctx context.Context,
	categoryID string,
) error {
	delete(r.categories, categoryID)
	return nil
}

func (r *InMemoryRepository) CreateProduct(
	ctx context.Context,
	product *Product,
) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = product
	return nil
}

func (r *InMemoryRepository) GetProduct(
	ctx context.Context,
	productID string,
) (*Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (r *InMemoryRepository) ListProducts(
	ctx context.Context,
	companyID string,
) ([]*Product, error) {
	var products []*Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func (r *InMemoryRepository) UpdateProduct(
	ctx context.Context,
	product *Product,
) error {
	if _, ok := r.products[product.ID]; !ok {
		return ErrProductNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *InMemoryRepository) DeleteProduct(
	ctx context.Context,
	productID string,
) error {
	delete(r.products, productID)
	return nil
}

func (r *InMemoryRepository) SetPromotion(
	ctx context.Context,
	productID string,
	isPromotion bool,
	promotionalPrice float64,
) error {
	product, ok := r.products[productID]
	if !ok {
		return ErrProductNotFound
	}
	product.IsPromotion = isPromotion
	product.PromotionalPrice = promotionalPrice
	return nil
}
