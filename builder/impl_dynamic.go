// SPDX-License-Identifier: MIT
// Package: dynpgm/builder
//
// impl_dynamic.go - implementation of the Dynamic(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrInvalidHorizon, before the first insertion).
//   - Variable emission order: A0, B0, C0, then A_i, B_i, C_i for i = 1..n.
//   - Edge emission order: A0→B0, then for i = 1..n:
//     A_i→B_i, B_{i-1}→B_i, B_{i-1}→A_i, C_{i-1}→C_i, C_{i-1}→A_i.
//   - Parent order (row-index bit order, first = most significant):
//     A_i<B_{i-1}, C_{i-1}>, B_0<A_0>, B_i<B_{i-1}, A_i>, C_i<C_{i-1}>.
//
// Complexity:
//   - Time: O(n) — 3(n+1) variables, 5n+1 edges.
//   - Space: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/dynpgm/core"
)

type dynamicPlan struct {
	cfg builderConfig
	net *core.Network
}

// Dynamic returns a Constructor that builds the three-chain dynamic network of horizon n.
func Dynamic(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		// Validate parameter domain early.
		if err := validateHorizon(MethodDynamic, n); err != nil {
			return err
		}

		p := dynamicPlan{cfg: cfg, net: net}

		// Seed slice (t = 0).
		a0, b0, c0 := core.K(core.ChainA, 0), core.K(core.ChainB, 0), core.K(core.ChainC, 0)
		if err := p.declare(a0, RoleA0, core.Binary); err != nil {
			return err
		}
		if err := p.declare(b0, RoleB0, core.Binary, a0); err != nil {
			return err
		}
		if err := p.declare(c0, RoleC0, cfg.numeric); err != nil {
			return err
		}
		if err := p.connect(a0, b0); err != nil {
			return err
		}

		// Replicated slices (t = 1..n).
		for i := 1; i <= n; i++ {
			ai, bi, ci := core.K(core.ChainA, i), core.K(core.ChainB, i), core.K(core.ChainC, i)
			bp, cp := core.K(core.ChainB, i-1), core.K(core.ChainC, i-1)

			if err := p.declare(ai, RoleA, core.Binary, bp, cp); err != nil {
				return err
			}
			if err := p.declare(bi, RoleB, core.Binary, bp, ai); err != nil {
				return err
			}
			if err := p.declare(ci, RoleC, cfg.numeric, cp); err != nil {
				return err
			}

			for _, e := range [...]core.Edge{
				{From: ai, To: bi},
				{From: bp, To: bi},
				{From: bp, To: ai},
				{From: cp, To: ci},
				{From: cp, To: ai},
			} {
				if err := p.connect(e.From, e.To); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// declare adds one variable with the table configured for role.
func (p dynamicPlan) declare(k core.Key, role Role, dom core.Domain, parents ...core.Key) error {
	err := p.net.AddVariable(core.Variable{
		Key:     k,
		Domain:  dom,
		Parents: parents,
		Table:   p.cfg.table(role),
	})
	if err != nil {
		return fmt.Errorf("%s: role %s: %w", MethodDynamic, role, err)
	}

	return nil
}

func (p dynamicPlan) connect(from, to core.Key) error {
	if err := p.net.AddEdge(from, to); err != nil {
		return fmt.Errorf("%s: %w", MethodDynamic, err)
	}

	return nil
}

// VariableCount returns the number of variables Dynamic(n) declares: 3(n+1).
func VariableCount(n int) int { return 3 * (n + 1) }

// EdgeCount returns the number of edges Dynamic(n) emits: 5n+1.
func EdgeCount(n int) int { return 5*n + 1 }
