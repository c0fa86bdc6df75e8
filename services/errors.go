package services

import "errors"

// Stable error kinds surfaced by the service layer. Controllers map these to
// HTTP status codes; messages shown to clients live in the controllers.
var (
	ErrNotFound        = errors.New("record not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("already exists")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrSelfRevoke      = errors.New("cannot revoke your own admin role")
)
