package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProductNotFound = errors.New("product not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Categories
// --------------------------------------------------

func (r *PostgresRepository) CreateCategory(
	ctx context.Context,
	category *Category,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, company_id, name, display_order)
		VALUES ($1, $2, $3, $4)
	`,
		category.ID,
		category.CompanyID,
		category.Name,
		category.Order,
	)
	return err
}

func (r *PostgresRepository) ListCategories(
	ctx context.Context,
	companyID string,
) ([]*Category, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, company_id, name, display_order
		FROM categories
		WHERE company_id = $1
		ORDER BY display_order ASC
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Order); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) UpdateCategory(
	ctx context.Context,
	category *Category,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE categories
		SET name = $2, display_order = $3
		WHERE id = $1
	`,
		category.ID,
		category.Name,
		category.Order,
	)
	return err
}

func (r *PostgresRepository) DeleteCategory(
	ctx context.Context,
	categoryID string,
) error {
	_, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	return err
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (r *PostgresRepository) CreateProduct(
	ctx context.Context,
	product *Product,
) error {

	flavorsJSON, comboJSON, ingredientsJSON, err := encodeConfigs(product)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO products (
			id, company_id, category_id,
			name, description, image,
			price, promotional_price, is_promotion,
			product_type, flavors, combo_config,
			ingredients, is_available
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
	`,
		product.ID,
		product.CompanyID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Image,
		product.Price,
		product.PromotionalPrice,
		product.IsPromotion,
		product.ProductType,
		flavorsJSON,
		comboJSON,
		ingredientsJSON,
		product.IsAvailable,
	)
	return err
}

func (r *PostgresRepository) GetProduct(
	ctx context.Context,
	productID string,
) (*Product, error) {

	row := r.db.QueryRow(ctx, `
		SELECT
			id, company_id, category_id,
			name, description, image,
			price, promotional_price, is_promotion,
			product_type, flavors, combo_config,
			ingredients, is_available
		FROM products
		WHERE id = $1
	`, productID)

	product, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (r *PostgresRepository) ListProducts(
	ctx context.Context,
	companyID string,
) ([]*Product, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id, company_id, category_id,
			name, description, image,
			price, promotional_price, is_promotion,
			product_type, flavors, combo_config,
			ingredients, is_available
		FROM products
		WHERE company_id = $1
		ORDER BY name ASC
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) UpdateProduct(
	ctx context.Context,
	product *Product,
) error {

	flavorsJSON, comboJSON, ingredientsJSON, err := encodeConfigs(product)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE products
		SET
			category_id = $2,
			name = $3,
			description = $4,
			image = $5,
			price = $6,
			promotional_price = $7,
			is_promotion = $8,
			product_type = $9,
			flavors = $10,
			combo_config = $11,
			ingredients = $12,
			is_available = $13
		WHERE id = $1
	`,
		product.ID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Image,
		product.Price,
		product.PromotionalPrice,
		product.IsPromotion,
		product.ProductType,
		flavorsJSON,
		comboJSON,
		ingredientsJSON,
		product.IsAvailable,
	)
	return err
}

func (r *PostgresRepository) DeleteProduct(
	ctx context.Context,
	productID string,
) error {
	_, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	return err
}

func (r *PostgresRepository) SetPromotion(
	ctx context.Context,
	productID string,
	isPromotion bool,
	promotionalPrice float64,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET is_promotion = $2, promotional_price = $3
		WHERE id = $1
	`, productID, isPromotion, promotionalPrice)
	return err
}

// --------------------------------------------------
// JSONB helpers
// --------------------------------------------------

func encodeConfigs(product *Product) ([]byte, []byte, []byte, error) {
	var flavorsJSON, comboJSON, ingredientsJSON []byte
	var err error

	if product.Flavors != nil {
		if flavorsJSON, err = json.Marshal(product.Flavors); err != nil {
			return nil, nil, nil, err
		}
	}
	if product.ComboConfig != nil {
		if comboJSON, err = json.Marshal(product.ComboConfig); err != nil {
			return nil, nil, nil, err
		}
	}
	if product.Ingredients != nil {
		if ingredientsJSON, err = json.Marshal(product.Ingredients); err != nil {
			return nil, nil, nil, err
		}
	}
	return flavorsJSON, comboJSON, ingredientsJSON, nil
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	var flavorsJSON, comboJSON, ingredientsJSON []byte

	if err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.CategoryID,
		&p.Name,
		&p.Description,
		&p.Image,
		&p.Price,
		&p.PromotionalPrice,
		&p.IsPromotion,
		&p.ProductType,
		&flavorsJSON,
		&comboJSON,
		&ingredientsJSON,
		&p.IsAvailable,
	); err != nil {
		return nil, err
	}

	// Legacy flavor/combo shapes are normalized here by the custom
	// UnmarshalJSON implementations.
	if len(flavorsJSON) > 0 {
		p.Flavors = &FlavorConfig{}
		if err := json.Unmarshal(flavorsJSON, p.Flavors); err != nil {
			return nil, err
		}
	}
	if len(comboJSON) > 0 {
		p.ComboConfig = &ComboConfig{}
		if err := json.Unmarshal(comboJSON, p.ComboConfig); err != nil {
			return nil, err
		}
	}
	if len(ingredientsJSON) > 0 {
		if err := json.Unmarshal(ingredientsJSON, &p.Ingredients); err != nil {
			return nil, err
		}
	}

	return &p, nil
}
