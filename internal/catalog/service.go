package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (s *Service) CreateCategory(
	ctx context.Context,
	companyID string,
	name string,
	order int,
) (*Category, error) {

	if name == "" {
		return nil, errors.New("category name is required")
	}

	category := &Category{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Order:     order,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) ListCategories(
	ctx context.Context,
	companyID string,
) ([]*Category, error) {
	return s.repo.ListCategories(ctx, companyID)
}

func (s *Service) UpdateCategory(ctx context.Context, category *Category) error {
	if category.Name == "" {
		return errors.New("category name is required")
	}
	return s.repo.UpdateCategory(ctx, category)
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.repo.DeleteCategory(ctx, categoryID)
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (s *Service) CreateProduct(ctx context.Context, product *Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	product.ID = uuid.New().String()
	assignOptionIDs(product)

	return s.repo.CreateProduct(ctx, product)
}

func (s *Service) GetProduct(
	ctx context.Context,
	productID string,
) (*Product, error) {
	return s.repo.GetProduct(ctx, productID)
}

func (s *Service) ListProducts(
	ctx context.Context,
	companyID string,
) ([]*Product, error) {
	return s.repo.ListProducts(ctx, companyID)
}

func (s *Service) UpdateProduct(ctx context.Context, product *Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	assignOptionIDs(product)
	return s.repo.UpdateProduct(ctx, product)
}

func (s *Service) DeleteProduct(ctx context.Context, productID string) error {
	return s.repo.DeleteProduct(ctx, productID)
}

// --------------------------------------------------
// Product Image Upload
// --------------------------------------------------

func (s *Service) UploadProductImage(
	ctx context.Context,
	companyID string,
	file multipart.File,
	filename string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"products/%s/%s%s",
		companyID,
		uuid.New().String(),
		ext,
	)

	return s.storage.Upload(ctx, key, file)
}

// --------------------------------------------------
// Validation
// --------------------------------------------------

// validateProduct enforces the type/payload invariant: a product carries
// exactly the configuration its type declares.
func validateProduct(p *Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}

	switch p.ProductType {
	case TypeSimple:
		if p.Flavors != nil || p.ComboConfig != nil {
			return errors.New("simple products cannot carry flavor or combo config")
		}

	case TypeFlavors:
		if p.Flavors == nil || len(p.Flavors.Options) == 0 {
			return errors.New("flavor products require at least one flavor option")
		}
		if p.ComboConfig != nil {
			return errors.New("flavor products cannot carry combo config")
		}
		if p.Flavors.Min < 0 || p.Flavors.Min > p.Flavors.Max {
			return errors.New("flavor config requires 0 <= min <= max")
		}

	case TypeCombo:
		if p.ComboConfig == nil || len(p.ComboConfig.Groups) == 0 {
			return errors.New("combo products require at least one group")
		}
		if p.Flavors != nil {
			return errors.New("combo products cannot carry flavor config")
		}
		for _, g := range p.ComboConfig.Groups {
			if g.Min < 0 || g.Min > g.Max {
				return fmt.Errorf("combo group %q requires 0 <= min <= max", g.Title)
			}
			switch g.Type {
			case GroupProducts:
				if len(g.ProductIDs) == 0 {
					return fmt.Errorf("combo group %q references no products", g.Title)
				}
			case GroupCustom:
				if len(g.Options) == 0 {
					return fmt.Errorf("combo group %q declares no options", g.Title)
				}
			default:
				return fmt.Errorf("combo group %q has unknown type %q", g.Title, g.Type)
			}
		}

	default:
		return fmt.Errorf("unknown product type %q", p.ProductType)
	}

	return nil
}

// assignOptionIDs replaces missing dashboard-authored option ids with UUIDs.
func assignOptionIDs(p *Product) {
	if p.Flavors != nil {
		for i := range p.Flavors.Options {
			if p.Flavors.Options[i].ID == "" {
				p.Flavors.Options[i].ID = uuid.New().String()
			}
		}
	}
	if p.ComboConfig != nil {
		for gi := range p.ComboConfig.Groups {
			g := &p.ComboConfig.Groups[gi]
			if g.ID == "" {
				g.ID = uuid.New().String()
			}
			for oi := range g.Options {
				if g.Options[oi].ID == "" {
					g.Options[oi].ID = uuid.New().String()
				}
			}
		}
	}
}
