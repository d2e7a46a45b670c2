package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// COMPANIES
	// -------------------------------
	companiesSQL := `
		CREATE TABLE IF NOT EXISTS companies (
			id UUID PRIMARY KEY,
			owner_id UUID NULL,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			profile_image VARCHAR(500) NOT NULL DEFAULT '',
			banner_image VARCHAR(500) NOT NULL DEFAULT '',
			whatsapp VARCHAR(30) NOT NULL DEFAULT '',
			minimum_order NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_open BOOLEAN NOT NULL DEFAULT TRUE,
			allows_delivery BOOLEAN NOT NULL DEFAULT TRUE,
			profile JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, companiesSQL); err != nil {
		return err
	}

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'COMPANY',
			company_id UUID NULL REFERENCES companies(id),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, usersSQL); err != nil {
		return err
	}

	addCompanyColumnSQL := `
		ALTER TABLE users
		ADD COLUMN IF NOT EXISTS company_id UUID NULL REFERENCES companies(id)
	`
	if _, err := db.Exec(ctx, addCompanyColumnSQL); err != nil {
		log.Println("Note: company_id column may already exist")
	}

	// -------------------------------
	// CATEGORIES
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			name VARCHAR(255) NOT NULL,
			display_order INT NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRODUCTS
	// -------------------------------
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			category_id UUID NOT NULL REFERENCES categories(id),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image VARCHAR(500) NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			promotional_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			is_promotion BOOLEAN NOT NULL DEFAULT FALSE,
			product_type VARCHAR(20) NOT NULL DEFAULT 'simple',
			flavors JSONB NULL,
			combo_config JSONB NULL,
			ingredients JSONB NULL,
			is_available BOOLEAN NOT NULL DEFAULT TRUE
		)
	`
	if _, err := db.Exec(ctx, productsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PROMOTIONS
	// -------------------------------
	promotionsSQL := `
		CREATE TABLE IF NOT EXISTS promotions (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			product_id UUID NOT NULL REFERENCES products(id),
			original_price NUMERIC(10,2) NOT NULL,
			promotional_price NUMERIC(10,2) NOT NULL,
			start_date TIMESTAMP NOT NULL,
			end_date TIMESTAMP NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, promotionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// COUPONS
	// -------------------------------
	couponsSQL := `
		CREATE TABLE IF NOT EXISTS coupons (
			id UUID PRIMARY KEY,
			company_id UUID NULL REFERENCES companies(id),
			code VARCHAR(50) UNIQUE NOT NULL,
			type VARCHAR(20) NOT NULL,
			value NUMERIC(10,2) NOT NULL,
			valid_from TIMESTAMP NOT NULL,
			valid_until TIMESTAMP NOT NULL,
			usage_limit INT NOT NULL DEFAULT 0,
			used_count INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, couponsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			customer_name VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(30) NOT NULL,
			delivery_type VARCHAR(20) NOT NULL,
			address JSONB NULL,
			items JSONB NOT NULL,
			subtotal NUMERIC(10,2) NOT NULL,
			coupon_code VARCHAR(50) NOT NULL DEFAULT '',
			discount NUMERIC(10,2) NOT NULL DEFAULT 0,
			total NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			payment_method VARCHAR(20) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
