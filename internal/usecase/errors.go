package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrDatasetUnavailable marks load failures: a missing source, missing
	// required columns or a structurally broken match table.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)
