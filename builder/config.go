// SPDX-License-Identifier: MIT
// Package: dynpgm/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • tables     = defaultTables (reference benchmark values)
//   • tolerance  = core.DefaultTolerance
//   • numeric    = [DefaultNumericLow, DefaultNumericHigh]

package builder

import "github.com/katalvlaran/dynpgm/core"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Per-role conditional probability tables.
	tables [roleCount][][]float64
	// Absolute row-sum tolerance handed to core.NewNetwork.
	tolerance float64
	// Domain of chain C.
	numeric core.Domain
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		tolerance: core.DefaultTolerance,
		numeric:   core.Range(DefaultNumericLow, DefaultNumericHigh),
	}
	for r := Role(0); r < roleCount; r++ {
		cfg.tables[r] = core.CloneTable(defaultTables[r])
	}

	// Last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// table returns the rows configured for r.
func (c builderConfig) table(r Role) [][]float64 {
	return c.tables[r]
}
