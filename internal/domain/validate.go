package domain

import (
	"fmt"
	"math"
)

// NonNegative fails with ErrValidation unless v is a finite number >= 0.
func NonNegative(field string, v float64) error {
	if !finite(v) || v < 0 {
		return fmt.Errorf("%w: %s must be a non-negative number, got %v", ErrValidation, field, v)
	}
	return nil
}

// Positive fails with ErrValidation unless v is a finite number > 0.
func Positive(field string, v float64) error {
	if !finite(v) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive number, got %v", ErrValidation, field, v)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
