package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Mathdino/mb-cardapionline/internal/catalog"
	"github.com/Mathdino/mb-cardapionline/internal/db"
	"github.com/Mathdino/mb-cardapionline/internal/promotion"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("⏰ Promotion worker starting...")

	// Validate database URL
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	// Database connection
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// Initialize promotion service
	promotionRepo := promotion.NewPostgresRepository(pgDB)
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	service := promotion.NewService(promotionRepo, catalogRepo)

	log.Println("✅ Promotion worker initialized and running...")
	log.Println("Re-resolving promotion windows every minute. Press Ctrl+C to stop.")

	// Sweep promotion windows indefinitely
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		if err := service.Sweep(context.Background()); err != nil {
			log.Printf("⚠️  Promotion sweep error: %v", err)
		}
	}
}
