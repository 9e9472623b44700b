package services

import "errors"

// Error kinds returned by the services. Handlers classify them with errors.Is
// to pick a status code; the wrapped message carries the detail.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrItemNotFound = errors.New("item not found")
	ErrNotOwner     = errors.New("not authorized")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInternalError      = errors.New("internal server error")
)
