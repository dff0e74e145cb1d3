package accuracy

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRange is returned for an empty, reversed or non-finite
	// sampling interval, or a non-positive one with logarithmic spacing.
	ErrInvalidRange = errors.New("accuracy: invalid sampling range")
	// ErrInvalidSamples is returned when fewer than two samples are requested.
	ErrInvalidSamples = errors.New("accuracy: sample count must be >= 2")
)

func validateRange(lo, hi float64, logSpacing bool) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}
	if logSpacing && lo <= 0 {
		return fmt.Errorf("%w: logarithmic spacing needs lo > 0, got %g", ErrInvalidRange, lo)
	}
	return nil
}

func validateSamples(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, n)
	}
	return nil
}
