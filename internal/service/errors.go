package service

import "errors"

// Domain error taxonomy. Handlers map these onto HTTP statuses; the
// service layer never retries and never logs on the request path.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("invalid token or credentials")
	ErrForbidden    = errors.New("not authorized for this resource")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrStorage      = errors.New("storage failure")
)
