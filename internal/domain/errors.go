package domain

import "errors"

// Sentinel errors used across layers. Callers wrap them with context via
// fmt.Errorf("%w: ...") and match with errors.Is.
var (
	ErrValidation        = errors.New("validation failed")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrNilReference      = errors.New("nil reference")
	ErrInvalidRole       = errors.New("invalid role selected")
	ErrBadCredentials    = errors.New("wrong credentials")
	ErrOrderLog          = errors.New("cannot open order log for writing")
	ErrNotFound          = errors.New("not found")
	ErrNotLoggedIn       = errors.New("not logged in")
)
