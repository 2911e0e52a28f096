// SPDX-License-Identifier: MIT
// Package: dynpgm/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, prefixed by the method tag.
//   • Constructors never panic; option constructors (WithX) do.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidHorizon indicates a negative horizon n.
// Usage: if errors.Is(err, ErrInvalidHorizon) { /* report n */ }.
var ErrInvalidHorizon = errors.New("builder: invalid horizon")

// ErrInvalidComplexity indicates a query complexity j that is below MinComplexity
// or that would reference a B variable beyond the horizon.
var ErrInvalidComplexity = errors.New("builder: invalid query complexity")

// ErrOutOfRange is wrapped together with ErrInvalidComplexity when the query
// would reference an undeclared variable (j-2 > n).
var ErrOutOfRange = errors.New("builder: reference beyond horizon")

// ErrConstructFailed indicates that a finished network violates a structural
// invariant (missing edge, non-topological declaration, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <formatted message>: <sentinel>" with the
// sentinel preserved for errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
