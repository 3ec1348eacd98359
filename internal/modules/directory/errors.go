package directory

import "errors"

var ErrValidation = errors.New("invalid directory data")
