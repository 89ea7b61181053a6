package order

import "errors"

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidStatus   = errors.New("invalid status")
)
