package stay

import "errors"

var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrAlreadyCheckedIn       = errors.New("booking already has an accommodation")
)
