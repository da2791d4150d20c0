package repository

import "errors"

var (
	// ErrNotFound means a well-formed identifier has no persisted record.
	// Distinct from a format error so the UI can offer "start new" rather
	// than "check your id".
	ErrNotFound = errors.New("session not found")

	// ErrInvalidRecord means a persisted value could not be decoded.
	ErrInvalidRecord = errors.New("invalid session record")
)
