package estimates

import "errors"

var (
	ErrNotFound          = errors.New("estimate not found")
	ErrInvalidTransition = errors.New("invalid estimate status transition")
)
