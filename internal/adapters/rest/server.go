// internal/adapters/rest/server.go
package rest

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rifatmia/shop-backend/internal/domain"
	"github.com/rifatmia/shop-backend/pkg/metrics"
)

type checkoutService interface {
	Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResult, error)
}

type catalogService interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type newsletterService interface {
	Subscribe(ctx context.Context, email string) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	checkout   checkoutService
	catalog    catalogService
	newsletter newsletterService
	store      pinger
	cache      pinger
}

func NewServer(checkout checkoutService, catalog catalogService, newsletter newsletterService, store, cache pinger) *Server {
	return &Server{
		checkout:   checkout,
		catalog:    catalog,
		newsletter: newsletter,
		store:      store,
		cache:      cache,
	}
}

// NewRouter wires the server's handlers into a gin engine with CORS, request
// metrics, the Prometheus endpoint, and the static storefront assets.
func NewRouter(s *Server, m *metrics.ServerMetrics, allowedOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if m != nil {
		router.Use(MetricsMiddleware(m))
	}

	api := router.Group("/api")
	{
		api.GET("/health", s.HealthCheck)
		api.GET("/products", s.ListProducts)
		api.POST("/newsletter", s.SubscribeNewsletter)
	}
	router.POST("/checkout", s.Checkout)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.Static("/public", "./public")

	return router
}
