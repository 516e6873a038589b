package model

import "errors"

var (
	// ErrNotFound is returned for rows that do not exist or belong to
	// another owner. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	ErrValidation = errors.New("validation error")
)
