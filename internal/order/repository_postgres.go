package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOrderNotFound = errors.New("order not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, order *Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}

	var addressJSON []byte
	if order.Address != nil {
		if addressJSON, err = json.Marshal(order.Address); err != nil {
			return err
		}
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, company_id,
			customer_name, customer_phone,
			delivery_type, address,
			items, subtotal, coupon_code, discount, total,
			status, payment_method, notes
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING created_at
	`,
		order.ID,
		order.CompanyID,
		order.CustomerName,
		order.CustomerPhone,
		order.DeliveryType,
		addressJSON,
		itemsJSON,
		order.Subtotal,
		order.CouponCode,
		order.Discount,
		order.Total,
		order.Status,
		order.PaymentMethod,
		order.Notes,
	).Scan(&order.CreatedAt)
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	orderID string,
) (*Order, error) {

	row := r.db.QueryRow(ctx, `
		SELECT
			id, company_id,
			customer_name, customer_phone,
			delivery_type, address,
			items, subtotal, coupon_code, discount, total,
			status, payment_method, notes, created_at
		FROM orders
		WHERE id = $1
	`, orderID)

	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

func (r *PostgresRepository) ListByCompany(
	ctx context.Context,
	companyID string,
) ([]*Order, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id, company_id,
			customer_name, customer_phone,
			delivery_type, address,
			items, subtotal, coupon_code, discount, total,
			status, payment_method, notes, created_at
		FROM orders
		WHERE company_id = $1
		ORDER BY created_at DESC
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(
	ctx context.Context,
	orderID string,
	status Status,
) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2
		WHERE id = $1
	`, orderID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var addressJSON, itemsJSON []byte

	if err := row.Scan(
		&o.ID,
		&o.CompanyID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.DeliveryType,
		&addressJSON,
		&itemsJSON,
		&o.Subtotal,
		&o.CouponCode,
		&o.Discount,
		&o.Total,
		&o.Status,
		&o.PaymentMethod,
		&o.Notes,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(addressJSON) > 0 {
		o.Address = &Address{}
		if err := json.Unmarshal(addressJSON, o.Address); err != nil {
			return nil, err
		}
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, err
		}
	}

	return &o, nil
}
