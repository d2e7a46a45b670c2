package company

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCompanyNotFound = errors.New("company not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, company *Company) error {
	doc, err := encodeProfile(company)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO companies (
			id, owner_id, name, slug, description,
			profile_image, banner_image,
			whatsapp, minimum_order, is_open, allows_delivery,
			profile
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at, updated_at
	`,
		company.ID,
		company.OwnerID,
		company.Name,
		company.Slug,
		company.Description,
		company.ProfileImage,
		company.BannerImage,
		company.WhatsApp,
		company.MinimumOrder,
		company.IsOpen,
		company.AllowsDelivery,
		doc,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	companyID string,
) (*Company, error) {
	return r.get(ctx, `WHERE id = $1`, companyID)
}

func (r *PostgresRepository) GetBySlug(
	ctx context.Context,
	slug string,
) (*Company, error) {
	return r.get(ctx, `WHERE slug = $1`, slug)
}

func (r *PostgresRepository) Update(ctx context.Context, company *Company) error {
	doc, err := encodeProfile(company)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE companies
		SET
			name = $2,
			slug = $3,
			description = $4,
			profile_image = $5,
			banner_image = $6,
			whatsapp = $7,
			minimum_order = $8,
			is_open = $9,
			allows_delivery = $10,
			profile = $11,
			updated_at = NOW()
		WHERE id = $1
	`,
		company.ID,
		company.Name,
		company.Slug,
		company.Description,
		company.ProfileImage,
		company.BannerImage,
		company.WhatsApp,
		company.MinimumOrder,
		company.IsOpen,
		company.AllowsDelivery,
		doc,
	)
	return err
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id, owner_id, name, slug, description,
			profile_image, banner_image,
			whatsapp, minimum_order, is_open, allows_delivery,
			profile, created_at, updated_at
		FROM companies
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

func (r *PostgresRepository) get(
	ctx context.Context,
	where string,
	arg interface{},
) (*Company, error) {

	row := r.db.QueryRow(ctx, `
		SELECT
			id, owner_id, name, slug, description,
			profile_image, banner_image,
			whatsapp, minimum_order, is_open, allows_delivery,
			profile, created_at, updated_at
		FROM companies
	`+where, arg)

	company, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCompanyNotFound
	}
	return company, err
}

// profile groups the less-queried fields into one JSONB column.
type profileDoc struct {
	Phone          []string        `json:"phone"`
	Address        Address         `json:"address"`
	BusinessHours  []BusinessHours `json:"business_hours"`
	PaymentMethods []string        `json:"payment_methods"`
}

func encodeProfile(company *Company) ([]byte, error) {
	return json.Marshal(profileDoc{
		Phone:          company.Phone,
		Address:        company.Address,
		BusinessHours:  company.BusinessHours,
		PaymentMethods: company.PaymentMethods,
	})
}

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	var doc []byte

	if err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.ProfileImage,
		&c.BannerImage,
		&c.WhatsApp,
		&c.MinimumOrder,
		&c.IsOpen,
		&c.AllowsDelivery,
		&doc,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(doc) > 0 {
		var p profileDoc
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, err
		}
		c.Phone = p.Phone
		c.Address = p.Address
		c.BusinessHours = p.BusinessHours
		c.PaymentMethods = p.PaymentMethods
	}

	return &c, nil
}
