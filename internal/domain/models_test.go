// internal/domain/models_test.go
package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCoupon_DiscountFor(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		coupon   Coupon
		subtotal string
		want     string
	}{
		{
			name:     "percent on round subtotal",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("10"), IsActive: true},
			subtotal: "100.00",
			want:     "10.00",
		},
		{
			name:     "percent rounds to cents",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("15"), IsActive: true},
			subtotal: "33.33",
			want:     "5.00", // 4.9995 rounds up
		},
		{
			name:     "fixed within subtotal",
			coupon:   Coupon{DiscountType: DiscountFixed, Value: d("5"), IsActive: true},
			subtotal: "20.00",
			want:     "5",
		},
		{
			name:     "fixed clamped to subtotal",
			coupon:   Coupon{DiscountType: DiscountFixed, Value: d("30"), IsActive: true},
			subtotal: "20.00",
			want:     "20.00",
		},
		{
			name:     "inactive",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("10"), IsActive: false},
			subtotal: "100.00",
			want:     "0",
		},
		{
			name:     "expired",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("10"), IsActive: true, ExpiresAt: &past},
			subtotal: "100.00",
			want:     "0",
		},
		{
			name:     "unexpired future expiry",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("10"), IsActive: true, ExpiresAt: &future},
			subtotal: "100.00",
			want:     "10.00",
		},
		{
			name:     "below minimum subtotal",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("10"), IsActive: true, MinSubtotal: d("50")},
			subtotal: "49.99",
			want:     "0",
		},
		{
			name:     "at minimum subtotal",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("10"), IsActive: true, MinSubtotal: d("50")},
			subtotal: "50.00",
			want:     "5.00",
		},
		{
			name:     "negative fixed value clamped to zero",
			coupon:   Coupon{DiscountType: DiscountFixed, Value: d("-5"), IsActive: true},
			subtotal: "20.00",
			want:     "0",
		},
		{
			name:     "negative percent value clamped to zero",
			coupon:   Coupon{DiscountType: DiscountPercent, Value: d("-10"), IsActive: true},
			subtotal: "100.00",
			want:     "0",
		},
		{
			name:     "unknown discount type",
			coupon:   Coupon{DiscountType: "bogus", Value: d("10"), IsActive: true},
			subtotal: "100.00",
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coupon.DiscountFor(d(tt.subtotal), now)
			if !got.Equal(d(tt.want)) {
				t.Errorf("DiscountFor(%s) = %v, want %s", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestCartItem_Selector(t *testing.T) {
	byID := CartItem{VariantID: 4, Quantity: 1}
	if byID.Selector() != SelectByVariantID {
		t.Errorf("Selector() with variant id = %v, want SelectByVariantID", byID.Selector())
	}
	bySKU := CartItem{ProductSKU: "ABC", Grams: 500, Quantity: 1}
	if bySKU.Selector() != SelectBySKUWeight {
		t.Errorf("Selector() with sku+grams = %v, want SelectBySKUWeight", bySKU.Selector())
	}
}

func TestCartItem_Qty(t *testing.T) {
	if got := (CartItem{Quantity: 0}).Qty(); got != 1 {
		t.Errorf("Qty() with zero quantity = %d, want 1", got)
	}
	if got := (CartItem{Quantity: -2}).Qty(); got != 1 {
		t.Errorf("Qty() with negative quantity = %d, want 1", got)
	}
	if got := (CartItem{Quantity: 3}).Qty(); got != 3 {
		t.Errorf("Qty() = %d, want 3", got)
	}
}
