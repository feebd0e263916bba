// internal/application/newsletter_service.go
package application

import (
	"context"
	"regexp"
	"strings"

	"github.com/rifatmia/shop-backend/internal/domain"
	"github.com/rifatmia/shop-backend/internal/ports"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NewsletterService validates and records newsletter signups. Unlike
// checkout, which accepts any or no email, a signup must carry a
// well-formed address.
type NewsletterService struct {
	repo ports.NewsletterRepositoryPort
}

func NewNewsletterService(repo ports.NewsletterRepositoryPort) *NewsletterService {
	return &NewsletterService{repo: repo}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	return s.repo.Subscribe(ctx, email)
}
