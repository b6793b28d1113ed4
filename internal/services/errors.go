package services

import "errors"

// Domain error taxonomy. Handlers map these to HTTP statuses; anything else
// is treated as an internal error and never leaked to the client.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("invalid input")
	ErrDuplicateEntry     = errors.New("item already exists in cart")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
