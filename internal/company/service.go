package company

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mathdino/mb-cardapionline/internal/core"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
	now     func() time.Time
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage, now: time.Now}
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (s *Service) Create(ctx context.Context, company *Company) error {
	if company.Name == "" {
		return errors.New("company name is required")
	}
	if company.WhatsApp == "" && len(company.Phone) == 0 {
		return errors.New("company requires a whatsapp or phone number")
	}
	if company.MinimumOrder < 0 {
		return errors.New("minimum order cannot be negative")
	}

	company.ID = uuid.New().String()
	if company.Slug == "" {
		company.Slug = Slugify(company.Name)
	}

	return s.repo.Create(ctx, company)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Company, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) GetByID(ctx context.Context, companyID string) (*Company, error) {
	return s.repo.GetByID(ctx, companyID)
}

func (s *Service) Update(ctx context.Context, company *Company) error {
	if company.Name == "" {
		return errors.New("company name is required")
	}
	return s.repo.Update(ctx, company)
}

func (s *Service) ListAll(ctx context.Context) ([]*Company, error) {
	return s.repo.ListAll(ctx)
}

// --------------------------------------------------
// Images
// --------------------------------------------------

func (s *Service) UploadImage(
	ctx context.Context,
	companyID string,
	kind string, // "profile" | "banner"
	file multipart.File,
	filename string,
) (string, error) {

	if kind != "profile" && kind != "banner" {
		return "", errors.New("invalid image kind")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"companies/%s/%s-%s%s",
		companyID,
		kind,
		uuid.New().String(),
		ext,
	)

	return s.storage.Upload(ctx, key, file)
}

// --------------------------------------------------
// core.CompanyReader
// --------------------------------------------------

func (s *Service) IsOwner(
	ctx context.Context,
	companyID string,
	userID string,
) (bool, error) {
	company, err := s.repo.GetByID(ctx, companyID)
	if err != nil {
		return false, err
	}
	return company.OwnerID == userID, nil
}

func (s *Service) GetCheckoutInfo(
	ctx context.Context,
	companyID string,
) (*core.CheckoutInfo, error) {
	company, err := s.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &core.CheckoutInfo{
		Name:         company.Name,
		WhatsApp:     company.WhatsApp,
		MinimumOrder: company.MinimumOrder,
		IsOpen:       company.OpenAt(s.now()),
	}, nil
}

// Slugify builds a URL-safe slug from a company name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
