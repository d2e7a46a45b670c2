package company

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	companies map[string]*Company
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{companies: make(map[string]*Company)}
}

func (r *InMemoryRepository) Create(ctx context.Context, company *Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	r.companies[company.ID] = company
	return nil
}

func (r *InMemoryRepository) GetByID(
	ctx context.Context,
	companyID string,
) (*Company, error) {
	company, ok := r.companies[companyID]
	if !ok {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

func (r *InMemoryRepository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Company, error) {
	for _, c := range r.companies {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, ErrCompanyNotFound
}

func (r *InMemoryRepository) Update(ctx context.Context, company *Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return ErrCompanyNotFound
	}
	company.UpdatedAt = time.Now()
	r.companies[company.ID] = company
	return nil
}

func (r *InMemoryRepository) ListAll(ctx context.Context) ([]*Company, error) {
	var companies []*Company
	for _, c := range r.companies {
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].Name < companies[j].Name
	})
	return companies, nil
}
