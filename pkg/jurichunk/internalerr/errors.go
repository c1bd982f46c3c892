package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrEmptyText     = errors.New("empty text")
	ErrTextTooShort  = errors.New("text too short")
	ErrInvalidOption = errors.New("invalid option")
	ErrInvalidConfig = errors.New("invalid configuration")
)
