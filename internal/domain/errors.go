// internal/domain/errors.go
package domain

import "errors"

var (
	ErrEmptyCart       = errors.New("Cart is empty")
	ErrVariantNotFound = errors.New("Variant not found")
	ErrInvalidEmail    = errors.New("invalid email address")
)
