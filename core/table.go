// SPDX-License-Identifier: MIT
// Package: dynpgm/core
//
// table.go - conditional probability table checks and row-index helpers.
//
// Contract:
//   - ValidateTable never mutates rows.
//   - Checks run in a fixed priority: count → width → range → sum, and the
//     first violation wins, so errors are deterministic for a given table.
//
// Complexity:
//   - ValidateTable: O(r·RowWidth) time, O(1) space.

package core

import (
	"fmt"
	"math"
)

// RowsFor returns the number of table rows a variable with p binary parents has (2^p).
func RowsFor(p int) int {
	return 1 << p
}

// RowIndex maps parent states to a table row index, first parent most-significant.
// Each state must be 0 or 1; other values are masked to their low bit.
//
// Example: RowIndex(1, 0) == 2.
func RowIndex(states ...int) int {
	r := 0
	for _, s := range states {
		r = r<<1 | (s & 1)
	}

	return r
}

// ParentStates is the inverse of RowIndex for p parents.
//
// Example: ParentStates(2, 2) == []int{1, 0}.
func ParentStates(row, p int) []int {
	states := make([]int, p)
	for i := p - 1; i >= 0; i-- {
		states[i] = row & 1
		row >>= 1
	}

	return states
}

// ValidateTable checks rows against the design invariants for a variable with
// p parents and the given tolerance.
//
// Errors:
//   - ErrRowCount:    len(rows) != 2^p.
//   - ErrRowWidth:    some row has len != RowWidth.
//   - ErrProbability: some entry is NaN, Inf, < 0 or > 1.
//   - ErrRowSum:      |Σrow − 1| > tolerance.
func ValidateTable(rows [][]float64, p int, tolerance float64) error {
	// 1. Row count follows parent cardinality.
	if want := RowsFor(p); len(rows) != want {
		return fmt.Errorf("%d rows for %d parents, want %d: %w", len(rows), p, want, ErrRowCount)
	}

	for i, row := range rows {
		// 2. Binary rows only.
		if len(row) != RowWidth {
			return fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), RowWidth, ErrRowWidth)
		}

		// 3. Each entry is a probability.
		var sum float64
		for _, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > 1 {
				return fmt.Errorf("row %d entry %g: %w", i, x, ErrProbability)
			}
			sum += x
		}

		// 4. Row is a distribution.
		if math.Abs(sum-1) > tolerance {
			return fmt.Errorf("row %d sums to %g: %w", i, sum, ErrRowSum)
		}
	}

	return nil
}

// CloneTable returns a deep copy of rows.
func CloneTable(rows [][]float64) [][]float64 {
	if rows == nil {
		return nil
	}
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
