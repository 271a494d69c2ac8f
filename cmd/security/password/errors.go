package password

import "errors"

// Public, stable errors for policy configuration.
// Evaluation itself never fails.
var (
	ErrInvalidLength    = errors.New("invalid password length bounds")
	ErrInvalidThreshold = errors.New("invalid criteria threshold")
	ErrInvalidPool      = errors.New("invalid criteria pool")
	ErrInvalidCharset   = errors.New("invalid special character set")
	ErrUnknownCriterion = errors.New("unknown criterion")
)
