// Package builder provides validation helpers to enforce parameter
// contracts before any construction starts.
package builder

import "fmt"

// validateHorizon ensures n ≥ MinHorizon.
// Returns "<method>: horizon must be ≥ 0, got <n>: builder: invalid horizon" otherwise.
func validateHorizon(method string, n int) error {
	if n < MinHorizon {
		return builderErrorf(method, ErrInvalidHorizon, "horizon must be ≥ %d, got %d", MinHorizon, n)
	}

	return nil
}

// validateComplexity ensures j ≥ MinComplexity and that the last weighted
// term B{j-2} lies within the horizon n.
func validateComplexity(method string, n, j int) error {
	if j < MinComplexity {
		return builderErrorf(method, ErrInvalidComplexity, "complexity must be ≥ %d, got %d", MinComplexity, j)
	}
	if last := j - MinComplexity; last > n {
		return fmt.Errorf("%s: j=%d references B%d beyond horizon n=%d: %w: %w",
			method, j, last, n, ErrInvalidComplexity, ErrOutOfRange)
	}

	return nil
}

// Validate checks (n, j) as a pair without building anything: the horizon
// first, then the complexity. Callers use it to reject input before any
// output is produced.
func Validate(n, j int) error {
	if err := validateHorizon(MethodDynamic, n); err != nil {
		return err
	}

	return validateComplexity(MethodQuery, n, j)
}
