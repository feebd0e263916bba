// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
}

type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	ImageURL    string
	Status      string
	Variants    []ProductVariant
}

type ProductVariant struct {
	ID             int64
	ProductID      int64
	Label          string
	Grams          int64
	Price          decimal.Decimal
	CompareAtPrice decimal.NullDecimal
	ImageURL       string
}

// Coupon discount types.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

type Coupon struct {
	Code         string
	DiscountType string
	Value        decimal.Decimal
	MinSubtotal  decimal.Decimal
	IsActive     bool
	ExpiresAt    *time.Time
}

// Unexpired reports whether the coupon is still within its validity window.
func (c *Coupon) Unexpired(now time.Time) bool {
	return c.ExpiresAt == nil || c.ExpiresAt.After(now)
}

// DiscountFor returns the discount the coupon grants on the given subtotal,
// or zero when the coupon is inactive, expired, or the subtotal is below the
// minimum. Percent discounts are rounded to 2 decimal places; the result is
// clamped to the range [0, subtotal].
func (c *Coupon) DiscountFor(subtotal decimal.Decimal, now time.Time) decimal.Decimal {
	if !c.IsActive || !c.Unexpired(now) || subtotal.LessThan(c.MinSubtotal) {
		return decimal.Zero
	}
	var discount decimal.Decimal
	switch c.DiscountType {
	case DiscountPercent:
		discount = subtotal.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountFixed:
		discount = c.Value
	default:
		return decimal.Zero
	}
	if discount.IsNegative() {
		return decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		return subtotal
	}
	return discount
}

const OrderStatusCreated = "created"

type Order struct {
	ID               int64
	UserID           *int64
	SessionID        string
	TotalAmount      decimal.Decimal
	Status           string
	PaymentReference *string
	Items            []OrderItem
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	VariantID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// ItemSelector tells how a cart item identifies its variant.
type ItemSelector int

const (
	SelectByVariantID ItemSelector = iota
	SelectBySKUWeight
)

// CartItem is one requested line of a checkout. It carries either a variant
// id or a product SKU plus weight in grams; Selector reports which.
type CartItem struct {
	VariantID  int64
	ProductSKU string
	Grams      int64
	Quantity   int64
}

func (i CartItem) Selector() ItemSelector {
	if i.VariantID > 0 {
		return SelectByVariantID
	}
	return SelectBySKUWeight
}

// Qty returns the effective quantity, defaulting to 1 when the request
// carried none or a non-positive value.
func (i CartItem) Qty() int64 {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

type CheckoutRequest struct {
	Email      string
	Phone      string
	Items      []CartItem
	CouponCode string
	SessionID  string
}

type CheckoutResult struct {
	OrderID  int64
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}
