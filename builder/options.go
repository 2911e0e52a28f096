// SPDX-License-Identifier: MIT
// Package: dynpgm/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil/unknown role,
//     negative tolerance, inverted range). Table contents are NOT checked here;
//     core validates them when the variable is inserted, so a bad table is an
//     error from BuildNetwork, never a panic.

package builder

import "github.com/katalvlaran/dynpgm/core"

// BuilderOption customizes a construction by mutating a builderConfig
// before the network is created.
type BuilderOption func(*builderConfig)

// WithTable replaces the conditional probability table of every variable with role r.
// rows is copied. Panics on an unknown role.
func WithTable(r Role, rows [][]float64) BuilderOption {
	if r < 0 || r >= roleCount {
		panic("builder: WithTable(unknown role)")
	}
	cp := core.CloneTable(rows)
	return func(c *builderConfig) {
		c.tables[r] = cp
	}
}

// WithTolerance sets the absolute tolerance for |Σrow − 1|.
// Panics if eps < 0.
func WithTolerance(eps float64) BuilderOption {
	if eps < 0 {
		panic("builder: WithTolerance(eps<0)")
	}
	return func(c *builderConfig) {
		c.tolerance = eps
	}
}

// WithNumericRange sets the [low, high] range annotation of chain C.
// Panics if low > high.
func WithNumericRange(low, high int) BuilderOption {
	if low > high {
		panic("builder: WithNumericRange(low>high)")
	}
	return func(c *builderConfig) {
		c.numeric = core.Range(low, high)
	}
}
