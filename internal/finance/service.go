package finance

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

const topProductLimit = 5

type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// Summarize aggregates a company's delivered orders: order count, revenue,
// average ticket and the top products by revenue.
func (s *Service) Summarize(
	ctx context.Context,
	companyID string,
) (*Summary, error) {

	summary := &Summary{}

	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE company_id = $1 AND status = 'delivered'
	`, companyID).Scan(&summary.TotalOrders, &summary.TotalRevenue)
	if err != nil {
		return nil, err
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue =
			summary.TotalRevenue / float64(summary.TotalOrders)
	}

	// Order items live in a JSONB column; unnest them to rank products.
	rows, err := s.db.Query(ctx, `
		SELECT
			item->>'product_id',
			item->>'product_name',
			SUM((item->>'quantity')::int),
			SUM((item->>'subtotal')::numeric)
		FROM orders, jsonb_array_elements(items) AS item
		WHERE company_id = $1 AND status = 'delivered'
		GROUP BY 1, 2
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(
			&tp.ProductID,
			&tp.ProductName,
			&tp.Quantity,
			&tp.Revenue,
		); err != nil {
			return nil, err
		}
		summary.TopProducts = append(summary.TopProducts, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(summary.TopProducts, func(i, j int) bool {
		return summary.TopProducts[i].Revenue > summary.TopProducts[j].Revenue
	})
	if len(summary.TopProducts) > topProductLimit {
		summary.TopProducts = summary.TopProducts[:topProductLimit]
	}

	return summary, nil
}
