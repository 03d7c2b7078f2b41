package apperr

import "errors"

// Erreurs métier partagées entre les repos et les handlers.
// Les handlers les traduisent en codes HTTP (400, 401, 404, 500).
var (
	ErrValidation   = errors.New("validation")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage")
)
