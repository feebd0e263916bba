// internal/adapters/rest/handlers.go
package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rifatmia/shop-backend/internal/domain"
)

type checkoutItem struct {
	VariantID  int64  `json:"variantId"`
	ProductSKU string `json:"productSku"`
	Grams      int64  `json:"grams"`
	Qty        int64  `json:"qty"`
}

type checkoutRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	// Raw so that a missing, null, or non-list value all fall under the
	// empty-cart rejection rather than a generic bind failure.
	Items      json.RawMessage `json:"items"`
	CouponCode string          `json:"couponCode"`
	SessionID  string          `json:"sessionId"`
}

type checkoutResponse struct {
	OK       bool        `json:"ok"`
	OrderID  int64       `json:"orderId"`
	Subtotal json.Number `json:"subtotal"`
	Discount json.Number `json:"discount"`
	Total    json.Number `json:"total"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (s *Server) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}
	var reqItems []checkoutItem
	if len(req.Items) == 0 || json.Unmarshal(req.Items, &reqItems) != nil || len(reqItems) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrEmptyCart.Error()})
		return
	}

	items := make([]domain.CartItem, 0, len(reqItems))
	for _, item := range reqItems {
		items = append(items, domain.CartItem{
			VariantID:  item.VariantID,
			ProductSKU: item.ProductSKU,
			Grams:      item.Grams,
			Quantity:   item.Qty,
		})
	}

	result, err := s.checkout.Checkout(c.Request.Context(), &domain.CheckoutRequest{
		Email:      req.Email,
		Phone:      req.Phone,
		Items:      items,
		CouponCode: req.CouponCode,
		SessionID:  req.SessionID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		log.Printf("checkout failed: %v", err)
		if errors.Is(err, domain.ErrVariantNotFound) {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Checkout failed"})
		return
	}

	c.JSON(http.StatusOK, checkoutResponse{
		OK:       true,
		OrderID:  result.OrderID,
		Subtotal: json.Number(result.Subtotal.StringFixed(2)),
		Discount: json.Number(result.Discount.StringFixed(2)),
		Total:    json.Number(result.Total.StringFixed(2)),
	})
}

type productVariantResponse struct {
	ID             int64        `json:"id"`
	Label          string       `json:"label"`
	Grams          int64        `json:"grams"`
	Price          json.Number  `json:"price"`
	CompareAtPrice *json.Number `json:"compareAtPrice,omitempty"`
	ImageURL       string       `json:"imageUrl,omitempty"`
}

type productResponse struct {
	ID          int64                    `json:"id"`
	SKU         string                   `json:"sku"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	ImageURL    string                   `json:"imageUrl,omitempty"`
	Variants    []productVariantResponse `json:"variants"`
}

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.catalog.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to load products"})
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		pr := productResponse{
			ID:          p.ID,
			SKU:         p.SKU,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Variants:    make([]productVariantResponse, 0, len(p.Variants)),
		}
		for _, v := range p.Variants {
			vr := productVariantResponse{
				ID:       v.ID,
				Label:    v.Label,
				Grams:    v.Grams,
				Price:    json.Number(v.Price.StringFixed(2)),
				ImageURL: v.ImageURL,
			}
			if v.CompareAtPrice.Valid {
				n := json.Number(v.CompareAtPrice.Decimal.StringFixed(2))
				vr.CompareAtPrice = &n
			}
			pr.Variants = append(pr.Variants, vr)
		}
		out = append(out, pr)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "products": out})
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (s *Server) SubscribeNewsletter(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if err := s.newsletter.Subscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid email address"})
			return
		}
		log.Printf("newsletter signup failed: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Subscription failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.store.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database connection failed"})
		return
	}
	if err := s.cache.Ping(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Cache connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "OK"})
}
