// internal/application/catalog_service.go
package application

import (
	"context"
	"encoding/json"
	"log"

	"github.com/rifatmia/shop-backend/internal/domain"
	"github.com/rifatmia/shop-backend/internal/ports"
)

const productCacheKey = "catalog:products"

// CatalogService serves the storefront product listing through a
// read-through cache. Cache failures are logged and the request falls back
// to the repository; a stale or cold cache never fails a listing.
type CatalogService struct {
	repo  ports.CatalogRepositoryPort
	cache ports.CachePort
}

func NewCatalogService(repo ports.CatalogRepositoryPort, cache ports.CachePort) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	if data, err := s.cache.Get(ctx, productCacheKey); err == nil {
		var products []*domain.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		log.Printf("failed to decode cached catalog, falling back to store: %v", err)
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, productCacheKey, products); err != nil {
		// Cache error doesn't fail the operation
		log.Printf("failed to cache product catalog: %v", err)
	}
	return products, nil
}
