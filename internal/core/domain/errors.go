package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput indicates a sequence was empty after normalisation.
	// Callers translate it into a bad-request signal.
	ErrEmptyInput = errors.New("empty sequence")

	// ErrStoreUnavailable indicates no reference store has been loaded.
	ErrStoreUnavailable = errors.New("reference store unavailable")

	// ErrUnsupportedType indicates an unknown store backend or align mode.
	ErrUnsupportedType = errors.New("unsupported type")
)
