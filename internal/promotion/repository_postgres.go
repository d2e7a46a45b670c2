package promotion

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(
	ctx context.Context,
	promotion *Promotion,
) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO promotions (
			id, company_id, product_id,
			original_price, promotional_price,
			start_date, end_date, is_active
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`,
		promotion.ID,
		promotion.CompanyID,
		promotion.ProductID,
		promotion.OriginalPrice,
		promotion.PromotionalPrice,
		promotion.StartDate,
		promotion.EndDate,
		promotion.IsActive,
	).Scan(&promotion.CreatedAt)
}

func (r *PostgresRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Promotion, error) {
	return r.list(ctx, `
		SELECT
			id, company_id, product_id,
			original_price, promotional_price,
			start_date, end_date, is_active, created_at
		FROM promotions
		WHERE company_id = $1
		ORDER BY created_at DESC
	`, companyID)
}

func (r *PostgresRepository) ListByProduct(
	ctx context.Context,
	productID string,
) ([]*Promotion, error) {
	return r.list(ctx, `
		SELECT
			id, company_id, product_id,
			original_price, promotional_price,
			start_date, end_date, is_active, created_at
		FROM promotions
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
}

func (r *PostgresRepository) ListPromotedProductIDs(
	ctx context.Context,
) ([]string, error) {

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT product_id FROM promotions
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresRepository) SetActive(
	ctx context.Context,
	promotionID string,
	active bool,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE promotions
		SET is_active = $2
		WHERE id = $1
	`, promotionID, active)
	return err
}

func (r *PostgresRepository) Delete(
	ctx context.Context,
	promotionID string,
) error {
	_, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, promotionID)
	return err
}

func (r *PostgresRepository) list(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]*Promotion, error) {

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promotions []*Promotion
	for rows.Next() {
		var p Promotion
		if err := rows.Scan(
			&p.ID,
			&p.CompanyID,
			&p.ProductID,
			&p.OriginalPrice,
			&p.PromotionalPrice,
			&p.StartDate,
			&p.EndDate,
			&p.IsActive,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		promotions = append(promotions, &p)
	}
	return promotions, rows.Err()
}
