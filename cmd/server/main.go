// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/rifatmia/shop-backend/internal/adapters/redis"
	"github.com/rifatmia/shop-backend/internal/adapters/repository"
	"github.com/rifatmia/shop-backend/internal/adapters/rest"
	"github.com/rifatmia/shop-backend/internal/application"
	"github.com/rifatmia/shop-backend/pkg/metrics"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("failed to load env variables", err)
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer db.Close()

	// Small fixed pool; checkout transactions queue on acquisition when
	// every connection is checked out.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping DB: %v", err)
	}

	redisAddr := envOrDefault("REDIS_ADDR", "localhost:6379")
	redisUsername := os.Getenv("REDIS_USERNAME")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	cache := redis.NewCache(redisAddr, redisUsername, redisPassword, 0, 5*time.Minute)
	defer cache.Close()
	if err := cache.Ping(context.Background()); err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	repo := repository.NewPostgresRepository(db)
	srv := rest.NewServer(
		application.NewCheckoutService(repo),
		application.NewCatalogService(repo, cache),
		application.NewNewsletterService(repo),
		repo,
		cache,
	)

	m := metrics.NewServerMetrics("storefront")
	origins := strings.Split(envOrDefault("CORS_ORIGINS", "http://localhost:3000"), ",")
	router := rest.NewRouter(srv, m, origins)

	addr := envOrDefault("HTTP_ADDR", ":8080")
	log.Printf("HTTP server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
