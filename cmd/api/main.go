package main

import (
	"context"
	"log"
	"os"

	"github.com/Mathdino/mb-cardapionline/internal/auth"
	"github.com/Mathdino/mb-cardapionline/internal/cart"
	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/company"
	"github.com/Mathdino/mb-cardapionline/internal/coupon"
	"github.com/Mathdino/mb-cardapionline/internal/db"
	"github.com/Mathdino/mb-cardapionline/internal/finance"
	"github.com/Mathdino/mb-cardapionline/internal/middleware"
	"github.com/Mathdino/mb-cardapionline/internal/order"
	"github.com/Mathdino/mb-cardapionline/internal/promotion"
	"github.com/Mathdino/mb-cardapionline/internal/router"
	"github.com/Mathdino/mb-cardapionline/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := router.New()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	companyRepo := company.NewPostgresRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	couponRepo := coupon.NewPostgresRepository(pgDB)
	promotionRepo := promotion.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	companyService := company.NewService(companyRepo, r2Client)
	catalogService := catalog.NewService(catalogRepo, r2Client)
	couponService := coupon.NewService(couponRepo)
	promotionService := promotion.NewService(promotionRepo, catalogRepo)
	orderService := order.NewService(orderRepo, companyService)
	financeService := finance.NewService(pgDB)

	cartStore := cart.NewStore()

	// ───────────────────────── HANDLERS ─────────────────────────
	companyHandler := company.NewHandler(companyService)
	catalogHandler := catalog.NewHandler(catalogService)
	couponHandler := coupon.NewHandler(couponService)
	promotionHandler := promotion.NewHandler(promotionService)
	orderHandler := order.NewHandler(orderService)
	financeHandler := finance.NewHandler(financeService)
	cartHandler := cart.NewHandler(cartStore, catalogService, couponService, orderService)

	// ───────────────────────── PUBLIC STOREFRONT ─────────────────────────
	r.GET("/companies/slug/:slug", companyHandler.GetBySlug)
	r.GET("/companies/:id/catalog", catalogHandler.GetCatalog)

	// ───────────────────────── CART ROUTES (PUBLIC) ─────────────────────────
	carts := r.Group("/carts")
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:id", cartHandler.GetCart)
		carts.POST("/:id/items", cartHandler.AddItem)
		carts.PATCH("/:id/items/:itemId", cartHandler.UpdateQuantity)
		carts.DELETE("/:id/items/:itemId", cartHandler.RemoveItem)
		carts.DELETE("/:id/items", cartHandler.ClearCart)
		carts.POST("/:id/coupon", cartHandler.ApplyCoupon)
		carts.DELETE("/:id/coupon", cartHandler.RemoveCoupon)
		carts.POST("/:id/checkout", cartHandler.Checkout)
	}

	// ───────────────────────── COMPANY DASHBOARD ─────────────────────────
	dashboard := r.Group("")
	dashboard.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleCompany),
		middleware.RequireCompany(),
	)
	{
		dashboard.GET("/companies/me", companyHandler.GetMine)
		dashboard.PUT("/companies/me", companyHandler.UpdateMine)
		dashboard.POST("/companies/me/images", companyHandler.UploadImage)

		dashboard.POST("/catalog/categories", catalogHandler.CreateCategory)
		dashboard.PUT("/catalog/categories/:id", catalogHandler.UpdateCategory)
		dashboard.DELETE("/catalog/categories/:id", catalogHandler.DeleteCategory)
		dashboard.POST("/catalog/products", catalogHandler.CreateProduct)
		dashboard.PUT("/catalog/products/:id", catalogHandler.UpdateProduct)
		dashboard.DELETE("/catalog/products/:id", catalogHandler.DeleteProduct)
		dashboard.POST("/catalog/products/image", catalogHandler.UploadProductImage)

		dashboard.POST("/promotions", promotionHandler.Create)
		dashboard.GET("/promotions", promotionHandler.List)
		dashboard.PATCH("/promotions/:id", promotionHandler.SetActive)
		dashboard.DELETE("/promotions/:id", promotionHandler.Delete)

		dashboard.POST("/coupons", couponHandler.Create)
		dashboard.GET("/coupons", couponHandler.List)
		dashboard.PATCH("/coupons/:id/deactivate", couponHandler.Deactivate)

		dashboard.GET("/orders", orderHandler.ListOrders)
		dashboard.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

		dashboard.GET("/finance/summary", financeHandler.GetSummary)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/companies", companyHandler.Create)
		admin.GET("/companies", companyHandler.ListAll)
	}

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
