package thd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when the frame length is not a power of two
	// of at least 8.
	ErrInvalidSize = errors.New("thd: frame size must be a power of two >= 8")
	// ErrInvalidCycles is returned when the tone does not fit strictly between
	// DC and Nyquist.
	ErrInvalidCycles = errors.New("thd: cycles must be in [1, size/2)")
)

func validateSize(n int) error {
	if n < minSize || n&(n-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return nil
}

func validateCycles(cycles, size int) error {
	if cycles < 1 || cycles >= size/2 {
		return fmt.Errorf("%w: %d for size %d", ErrInvalidCycles, cycles, size)
	}
	return nil
}

func validateFrame(n, size int) error {
	if n != size {
		return fmt.Errorf("%w: got %d samples, analyzer expects %d", ErrInvalidSize, n, size)
	}
	return nil
}
