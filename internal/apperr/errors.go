package apperr

import "errors"

var (
	ErrInvalidRecord = errors.New("invalid record")
	ErrNotFound      = errors.New("not found")
)
