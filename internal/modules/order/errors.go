package order

import "errors"

var (
	ErrValidation = errors.New("validation error")

	// ErrInsufficientStock is part of the error taxonomy but is not
	// returned by OrderProduct today: orders are accepted even when the
	// stock row is missing or short, matching the historical behavior.
	ErrInsufficientStock = errors.New("insufficient stock")
)
