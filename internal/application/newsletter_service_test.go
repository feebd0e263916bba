// internal/application/newsletter_service_test.go
package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rifatmia/shop-backend/internal/domain"
	"github.com/rifatmia/shop-backend/internal/ports"
)

func TestNewsletterService_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		email     string
		mockSetup func(repo *ports.MockNewsletterRepositoryPort)
		wantErr   error
	}{
		{
			name:  "valid email",
			email: "jane@example.com",
			mockSetup: func(repo *ports.MockNewsletterRepositoryPort) {
				repo.EXPECT().Subscribe(gomock.Any(), "jane@example.com").Return(nil)
			},
		},
		{
			name:  "surrounding whitespace trimmed",
			email: "  jane@example.com ",
			mockSetup: func(repo *ports.MockNewsletterRepositoryPort) {
				repo.EXPECT().Subscribe(gomock.Any(), "jane@example.com").Return(nil)
			},
		},
		{
			name:      "empty email",
			email:     "",
			mockSetup: func(repo *ports.MockNewsletterRepositoryPort) {},
			wantErr:   domain.ErrInvalidEmail,
		},
		{
			name:      "missing domain",
			email:     "jane@",
			mockSetup: func(repo *ports.MockNewsletterRepositoryPort) {},
			wantErr:   domain.ErrInvalidEmail,
		},
		{
			name:      "missing tld",
			email:     "jane@example",
			mockSetup: func(repo *ports.MockNewsletterRepositoryPort) {},
			wantErr:   domain.ErrInvalidEmail,
		},
		{
			name:  "repository error propagates",
			email: "jane@example.com",
			mockSetup: func(repo *ports.MockNewsletterRepositoryPort) {
				repo.EXPECT().Subscribe(gomock.Any(), "jane@example.com").Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := ports.NewMockNewsletterRepositoryPort(ctrl)
			tt.mockSetup(repo)
			svc := NewNewsletterService(repo)

			err := svc.Subscribe(context.Background(), tt.email)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Subscribe() unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr.Error() {
				t.Errorf("Subscribe() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
