package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidDateRange = errors.New("checkin date must be before checkout date")
	ErrRoomUnavailable  = errors.New("room is not available for the selected dates")
)
