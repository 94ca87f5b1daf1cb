package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"classifieds/internal/database"
	"classifieds/internal/repository"
)

// Lifts bans whose end date has passed. Intended to run from cron.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()
	now := time.Now()

	users, err := repository.NewUserRepository(db).LiftExpiredBans(ctx, now)
	if err != nil {
		log.Fatalf("cleanup users failed: %v", err)
	}

	companies, err := repository.NewCompanyRepository(db).LiftExpiredBans(ctx, now)
	if err != nil {
		log.Fatalf("cleanup companies failed: %v", err)
	}

	log.Printf("ban cleanup completed: users=%d companies=%d", users, companies)
}
