// internal/application/checkout_service.go
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rifatmia/shop-backend/internal/domain"
	"github.com/rifatmia/shop-backend/internal/ports"
	"github.com/shopspring/decimal"
)

// CheckoutService turns a cart into a persisted order. The whole workflow --
// user lookup or creation, variant resolution, coupon application, order and
// order item inserts -- runs inside one store transaction, so a failure at
// any step leaves nothing behind, a user row created earlier in the same
// call included.
type CheckoutService struct {
	store ports.CheckoutStorePort
}

func NewCheckoutService(store ports.CheckoutStorePort) *CheckoutService {
	return &CheckoutService{store: store}
}

func (s *CheckoutService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var result domain.CheckoutResult
	err := s.store.RunInTransaction(ctx, func(tx ports.CheckoutTx) error {
		userID, err := s.resolveUser(ctx, tx, req.Email, req.Phone)
		if err != nil {
			return err
		}

		subtotal := decimal.Zero
		items := make([]domain.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			variant, err := s.resolveVariant(ctx, tx, item)
			if err != nil {
				return err
			}
			qty := item.Qty()
			subtotal = subtotal.Add(variant.Price.Mul(decimal.NewFromInt(qty)))
			items = append(items, domain.OrderItem{
				VariantID: variant.ID,
				Quantity:  qty,
				UnitPrice: variant.Price,
			})
		}

		discount := decimal.Zero
		if req.CouponCode != "" {
			coupon, err := tx.FindCouponByCode(ctx, req.CouponCode)
			if err != nil {
				return fmt.Errorf("failed to look up coupon: %w", err)
			}
			// A missing, expired, or inapplicable coupon is not an error:
			// the checkout proceeds with no discount.
			if coupon != nil {
				discount = coupon.DiscountFor(subtotal, time.Now())
			}
		}

		total := subtotal.Sub(discount)
		if total.IsNegative() {
			total = decimal.Zero
		}

		order := &domain.Order{
			UserID:      userID,
			SessionID:   req.SessionID,
			TotalAmount: total,
			Status:      domain.OrderStatusCreated,
		}
		orderID, err := tx.CreateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range items {
			items[i].OrderID = orderID
			if err := tx.CreateOrderItem(ctx, &items[i]); err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		result = domain.CheckoutResult{
			OrderID:  orderID,
			Subtotal: subtotal,
			Discount: discount,
			Total:    total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// resolveUser returns the id of the user owning the checkout, creating the
// row on first sight of the email. An empty email means a guest checkout and
// a nil id.
func (s *CheckoutService) resolveUser(ctx context.Context, tx ports.CheckoutTx, email, phone string) (*int64, error) {
	if email == "" {
		return nil, nil
	}
	user, err := tx.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user != nil {
		return &user.ID, nil
	}
	id, err := tx.CreateUser(ctx, &domain.User{Email: email, Phone: phone})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &id, nil
}

func (s *CheckoutService) resolveVariant(ctx context.Context, tx ports.CheckoutTx, item domain.CartItem) (*domain.ProductVariant, error) {
	var (
		variant *domain.ProductVariant
		err     error
	)
	switch item.Selector() {
	case domain.SelectByVariantID:
		variant, err = tx.FindVariantByID(ctx, item.VariantID)
	case domain.SelectBySKUWeight:
		variant, err = tx.FindVariantBySKU(ctx, item.ProductSKU, item.Grams)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variant: %w", err)
	}
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}
	return variant, nil
}
