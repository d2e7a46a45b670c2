package coupon

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCouponNotFound = errors.New("coupon not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, coupon *Coupon) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO coupons (
			id, company_id, code, type, value,
			valid_from, valid_until, usage_limit, used_count, is_active
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at
	`,
		coupon.ID,
		nullableID(coupon.CompanyID),
		strings.ToUpper(coupon.Code),
		coupon.Type,
		coupon.Value,
		coupon.ValidFrom,
		coupon.ValidUntil,
		coupon.UsageLimit,
		coupon.UsedCount,
		coupon.IsActive,
	).Scan(&coupon.CreatedAt)
}

func (r *PostgresRepository) FindByCode(
	ctx context.Context,
	code string,
) (*Coupon, error) {

	var c Coupon
	var companyID *string

	err := r.db.QueryRow(ctx, `
		SELECT
			id, company_id, code, type, value,
			valid_from, valid_until, usage_limit, used_count, is_active,
			created_at
		FROM coupons
		WHERE code = $1
	`, strings.ToUpper(code)).Scan(
		&c.ID,
		&companyID,
		&c.Code,
		&c.Type,
		&c.Value,
		&c.ValidFrom,
		&c.ValidUntil,
		&c.UsageLimit,
		&c.UsedCount,
		&c.IsActive,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}

	if companyID != nil {
		c.CompanyID = *companyID
	}
	return &c, nil
}

func (r *PostgresRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Coupon, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id, company_id, code, type, value,
			valid_from, valid_until, usage_limit, used_count, is_active,
			created_at
		FROM coupons
		WHERE company_id = $1
		ORDER BY created_at DESC
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []*Coupon
	for rows.Next() {
		var c Coupon
		var cid *string
		if err := rows.Scan(
			&c.ID,
			&cid,
			&c.Code,
			&c.Type,
			&c.Value,
			&c.ValidFrom,
			&c.ValidUntil,
			&c.UsageLimit,
			&c.UsedCount,
			&c.IsActive,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		if cid != nil {
			c.CompanyID = *cid
		}
		coupons = append(coupons, &c)
	}
	return coupons, rows.Err()
}

func (r *PostgresRepository) IncrementUsage(
	ctx context.Context,
	couponID string,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE coupons
		SET used_count = used_count + 1
		WHERE id = $1
	`, couponID)
	return err
}

func (r *PostgresRepository) Deactivate(
	ctx context.Context,
	couponID string,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE coupons
		SET is_active = FALSE
		WHERE id = $1
	`, couponID)
	return err
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
