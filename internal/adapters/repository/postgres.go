// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rifatmia/shop-backend/internal/domain"
	"github.com/rifatmia/shop-backend/internal/ports"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// RunInTransaction executes fn inside one database transaction. The deferred
// Rollback is a no-op after a successful Commit, so the connection returns
// to the pool exactly once whether fn succeeds, fails, or panics.
func (r *PostgresRepository) RunInTransaction(ctx context.Context, fn func(tx ports.CheckoutTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&checkoutTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT p.id, p.sku, p.name, COALESCE(p.description, ''), COALESCE(p.image_url, ''), p.status,
			v.id, v.product_id, v.label, v.grams, v.price, v.compare_at_price, COALESCE(v.image_url, '')
		FROM products p
		JOIN product_variants v ON v.product_id = p.id
		WHERE p.status = 'active'
		ORDER BY p.id, v.grams
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	byID := make(map[int64]*domain.Product)
	for rows.Next() {
		var p domain.Product
		var v domain.ProductVariant
		err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.ImageURL, &p.Status,
			&v.ID, &v.ProductID, &v.Label, &v.Grams, &v.Price, &v.CompareAtPrice, &v.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		product, ok := byID[p.ID]
		if !ok {
			product = &p
			byID[p.ID] = product
			products = append(products, product)
		}
		product.Variants = append(product.Variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PostgresRepository) Subscribe(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO newsletter_subscribers (email) VALUES ($1) ON CONFLICT (email) DO NOTHING", email)
	return err
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type checkoutTx struct {
	tx *sql.Tx
}

func (t *checkoutTx) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	err := t.tx.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, email, COALESCE(phone, ''), password_hash FROM users WHERE email = $1",
		email).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (t *checkoutTx) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx,
		"INSERT INTO users (first_name, last_name, email, phone, password_hash) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		user.FirstName, user.LastName, user.Email, user.Phone, user.PasswordHash).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (t *checkoutTx) FindVariantByID(ctx context.Context, id int64) (*domain.ProductVariant, error) {
	return t.scanVariant(t.tx.QueryRowContext(ctx, `
		SELECT id, product_id, label, grams, price, compare_at_price, COALESCE(image_url, '')
		FROM product_variants WHERE id = $1`, id))
}

func (t *checkoutTx) FindVariantBySKU(ctx context.Context, sku string, grams int64) (*domain.ProductVariant, error) {
	return t.scanVariant(t.tx.QueryRowContext(ctx, `
		SELECT v.id, v.product_id, v.label, v.grams, v.price, v.compare_at_price, COALESCE(v.image_url, '')
		FROM product_variants v
		JOIN products p ON p.id = v.product_id
		WHERE p.sku = $1 AND v.grams = $2
		LIMIT 1`, sku, grams))
}

func (t *checkoutTx) scanVariant(row *sql.Row) (*domain.ProductVariant, error) {
	variant := &domain.ProductVariant{}
	err := row.Scan(&variant.ID, &variant.ProductID, &variant.Label, &variant.Grams,
		&variant.Price, &variant.CompareAtPrice, &variant.ImageURL)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return variant, nil
}

func (t *checkoutTx) FindCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon := &domain.Coupon{}
	var expires sql.NullTime
	err := t.tx.QueryRowContext(ctx,
		"SELECT code, discount_type, value, min_subtotal, is_active, expires_at FROM coupons WHERE code = $1",
		code).Scan(&coupon.Code, &coupon.DiscountType, &coupon.Value, &coupon.MinSubtotal, &coupon.IsActive, &expires)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if expires.Valid {
		coupon.ExpiresAt = &expires.Time
	}
	return coupon, nil
}

func (t *checkoutTx) CreateOrder(ctx context.Context, order *domain.Order) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx,
		"INSERT INTO orders (user_id, session_id, total_amount, status, payment_reference) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		order.UserID, order.SessionID, order.TotalAmount, order.Status, order.PaymentReference).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (t *checkoutTx) CreateOrderItem(ctx context.Context, item *domain.OrderItem) error {
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO order_items (order_id, product_variant_id, quantity, unit_price) VALUES ($1, $2, $3, $4)",
		item.OrderID, item.VariantID, item.Quantity, item.UnitPrice)
	return err
}
