package promotion

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPromotionNotFound = errors.New("promotion not found")

type InMemoryRepository struct {
	promotions map[string]*Promotion
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{promotions: make(map[string]*Promotion)}
}

func (r *InMemoryRepository) Create(
	ctx context.Context,
	promotion *Promotion,
) error {
	if promotion.ID == "" {
		promotion.ID = uuid.New().String()
	}
	if promotion.CreatedAt.IsZero() {
		promotion.CreatedAt = time.Now()
	}
	r.promotions[promotion.ID] = promotion
	return nil
}

func (r *InMemoryRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Promotion, error) {
	var promotions []*Promotion
	for _, p := range r.promotions {
		if p.CompanyID == companyID {
			promotions = append(promotions, p)
		}
	}
	return promotions, nil
}

func (r *InMemoryRepository) ListByProduct(
	ctx context.Context,
	productID string,
) ([]*Promotion, error) {
	var promotions []*Promotion
	for _, p := range r.promotions {
		if p.ProductID == productID {
			promotions = append(promotions, p)
		}
	}
	return promotions, nil
}

func (r *InMemoryRepository) ListPromotedProductIDs(
	ctx context.Context,
) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, p := range r.promotions {
		if !seen[p.ProductID] {
			seen[p.ProductID] = true
			ids = append(ids, p.ProductID)
		}
	}
	return ids, nil
}

func (r *InMemoryRepository) SetActive(
	ctx context.Context,
	promotionID string,
	active bool,
) error {
	p, ok := r.promotions[promotionID]
	if !ok {
		return ErrPromotionNotFound
	}
	p.IsActive = active
	return nil
}

func (r *InMemoryRepository) Delete(
	ctx context.Context,
	promotionID string,
) error {
	delete(r.promotions, promotionID)
	return nil
}
