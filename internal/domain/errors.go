package domain

import "errors"

// ErrInvalidInput is returned when a sample or a settings value is rejected.
// Rejection never modifies previously stored state.
var ErrInvalidInput = errors.New("invalid input")
