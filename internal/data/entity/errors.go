package entity

import "errors"

// Domain error taxonomy. Services wrap these with context; the HTTP layer
// maps them to status codes with errors.Is.
var (
	ErrUnauthenticated      = errors.New("authentication required")
	ErrUnauthorized         = errors.New("not allowed")
	ErrNotFound             = errors.New("not found")
	ErrMalformedCart        = errors.New("malformed cart payload")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrValidationFailed     = errors.New("validation failed")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
	ErrVendorClosed         = errors.New("vendor is not accepting orders")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountDisabled      = errors.New("account is deactivated")
)
