package form

import "errors"

var ErrUnknownField = errors.New("unknown form field")
