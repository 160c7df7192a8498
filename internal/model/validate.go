package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput wraps all boundary validation failures so callers can
// test for the class with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidateInputs checks stock and tree dimensions before calculation.
// The calculator itself is total over finite inputs, so all rejection of
// non-finite or non-positive values happens here at the boundary.
func ValidateInputs(stock StockDimensions, tree TreeDimensions, manualAngle *float64) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"stock depth", stock.Depth},
		{"stock height", stock.Height},
		{"stock length", stock.Length},
		{"base width", tree.BaseWidth},
		{"target height", tree.TargetHeight},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, f.name, f.value)
		}
	}

	if manualAngle != nil {
		a := *manualAngle
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: manual cut angle must be a finite number", ErrInvalidInput)
		}
		if a < 0 || a > 90 {
			return fmt.Errorf("%w: manual cut angle must be between 0 and 90 degrees, got %g", ErrInvalidInput, a)
		}
	}

	return nil
}
