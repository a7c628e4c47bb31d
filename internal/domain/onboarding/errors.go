package onboarding

import "errors"

var (
	ErrDuplicateName   = errors.New("employee already exists")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidTemplate = errors.New("invalid onboarding template")
)
