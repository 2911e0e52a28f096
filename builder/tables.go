// SPDX-License-Identifier: MIT
// Package: dynpgm/builder
//
// tables.go — chain roles and their default conditional probability tables.
//
// Row order follows core.RowIndex: first parent most-significant.
//   • RoleA (parents B{i-1}, C{i-1}): rows (B,C) = 00, 01, 10, 11.
//   • RoleB (parents B{i-1}, Ai):     rows (B,A) = 00, 01, 10, 11.
//   • RoleC (parent  C{i-1}):         rows C = 0, 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dynpgm/core"
)

// Role names the position of a variable in the dynamic topology; every
// variable with the same role shares one table.
type Role int

// Roles of the dynamic topology.
const (
	RoleA0 Role = iota // A0, no parents
	RoleB0             // B0<A0>
	RoleC0             // C0, no parents
	RoleA              // Ai<B{i-1}, C{i-1}>, i ≥ 1
	RoleB              // Bi<B{i-1}, Ai>, i ≥ 1
	RoleC              // Ci<C{i-1}>, i ≥ 1

	roleCount
)

var roleNames = [roleCount]string{"A0", "B0", "C0", "A", "B", "C"}

// String returns the role label ("A0", "B", ...).
func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("Role(%d)", int(r))
	}

	return roleNames[r]
}

// ParentCount returns the number of parents a variable with role r has.
func (r Role) ParentCount() int {
	switch r {
	case RoleA, RoleB:
		return 2
	case RoleB0, RoleC:
		return 1
	default:
		return 0
	}
}

// defaultTables are the tables of the reference benchmark models.
var defaultTables = [roleCount][][]float64{
	RoleA0: {
		{0.25, 0.75},
	},
	RoleB0: {
		{0.75, 0.25},
		{0.25, 0.75},
	},
	RoleC0: {
		{0.5, 0.5},
	},
	RoleA: {
		{0.125, 0.875},
		{0.875, 0.125},
		{0.5, 0.5},
		{0.25, 0.75},
	},
	RoleB: {
		{0.25, 0.75},
		{0.5, 0.5},
		{0.125, 0.875},
		{0.875, 0.125},
	},
	RoleC: {
		{0.125, 0.875},
		{0.5, 0.5},
	},
}

// DefaultTable returns a copy of the default table for r (nil for unknown roles).
func DefaultTable(r Role) [][]float64 {
	if r < 0 || r >= roleCount {
		return nil
	}

	return core.CloneTable(defaultTables[r])
}
