package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrEmptyInput         = errors.New("empty input: sample has no usable values")
	ErrInvalidQuantile    = errors.New("quantile must be within [0, 1]")
	ErrInvalidWhiskerCoef = errors.New("whisker coefficient must be a positive finite number")
)

// NewEmptyInputError names the column that had nothing left to summarise.
func NewEmptyInputError(column ColumnKey) error {
	if column.IsEmpty() {
		return ErrEmptyInput
	}
	return fmt.Errorf("%w (column %s)", ErrEmptyInput, column)
}

func NewInvalidQuantileError(p float64) error {
	return fmt.Errorf("%w: got %v", ErrInvalidQuantile, p)
}

func NewInvalidWhiskerCoefError(k float64) error {
	return fmt.Errorf("%w: got %v", ErrInvalidWhiskerCoef, k)
}

// Error checking helpers
func IsEmptyInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrInvalidQuantile) ||
		errors.Is(err, ErrInvalidWhiskerCoef)
}
