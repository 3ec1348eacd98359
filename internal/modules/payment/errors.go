package payment

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrAmountExceedsTotal = errors.New("payment amount exceeds booking total")
)
