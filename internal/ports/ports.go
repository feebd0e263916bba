// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/rifatmia/shop-backend/internal/domain"
)

// CheckoutTx is the set of store operations available inside one checkout
// transaction. Every call sees the transaction's own reads and writes; none
// of them is visible outside until the transaction commits.
type CheckoutTx interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (int64, error)
	FindVariantByID(ctx context.Context, id int64) (*domain.ProductVariant, error)
	FindVariantBySKU(ctx context.Context, sku string, grams int64) (*domain.ProductVariant, error)
	FindCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	CreateOrder(ctx context.Context, order *domain.Order) (int64, error)
	CreateOrderItem(ctx context.Context, item *domain.OrderItem) error
}

// CheckoutStorePort runs fn inside a single transaction. The transaction
// commits when fn returns nil and rolls back when it returns an error; the
// underlying connection goes back to the pool on both paths.
type CheckoutStorePort interface {
	RunInTransaction(ctx context.Context, fn func(tx CheckoutTx) error) error
}

type CatalogRepositoryPort interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}

type NewsletterRepositoryPort interface {
	Subscribe(ctx context.Context, email string) error
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	Ping(ctx context.Context) error
}
