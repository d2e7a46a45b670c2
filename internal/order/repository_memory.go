package order

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	orders    map[string]*Order
	createErr error
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{orders: make(map[string]*Order)}
}

// FailNextCreate makes Create return err, for exercising external-failure
// paths in tests.
func (r *InMemoryRepository) FailNextCreate(err error) {
	r.createErr = err
}

func (r *InMemoryRepository) Create(ctx context.Context, order *Order) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	r.orders[order.ID] = order
	return nil
}

func (r *InMemoryRepository) GetByID(
	ctx context.Context,
	orderID string,
) (*Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (r *InMemoryRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Order, error) {
	var orders []*Order
	for _, o := range r.orders {
		if o.CompanyID == companyID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *InMemoryRepository) UpdateStatus(
	ctx context.Context,
	orderID string,
	status Status,
) error {
	order, ok := r.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	order.Status = status
	return nil
}
