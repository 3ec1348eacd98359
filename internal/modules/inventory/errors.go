package inventory

import "errors"

var ErrValidation = errors.New("invalid inventory data")
