// SPDX-License-Identifier: MIT
// Package: dynpgm/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates the network,
//     resolves cfg, runs cons in order, then checks whole-network invariants.
//   - Determinism: same inputs/options and constructor order ⇒ identical networks.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dynpgm/core"
	"github.com/katalvlaran/dynpgm/dfs"
)

// Constructor applies a deterministic network mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before touching the network.
//   - Declare variables before any edge that references them.
//   - Preserve determinism for the same config and call order.
type Constructor func(net *core.Network, cfg builderConfig) error

// BuildNetwork creates a new core.Network, resolves the builder configuration
// from bopts, and applies all constructors in order. Once every constructor
// has run, the network must satisfy:
//   - every declared parent has a matching edge (core.Network.MissingEdges is empty);
//   - the declaration order is topological (dfs.VerifyOrder);
//   - the edge set is acyclic (dfs.TopologicalSort).
//
// Any violation returns an error wrapping ErrConstructFailed; constructor
// errors are wrapped with "BuildNetwork: %w". No partial network is returned.
//
// Complexity:
//   - Σ cost of constructors + O(V+E) for the final checks.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	cfg := newBuilderConfig(bopts...)
	net := core.NewNetwork(core.WithTolerance(cfg.tolerance))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildNetwork, i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildNetwork, err)
		}
	}

	if missing := net.MissingEdges(); len(missing) > 0 {
		return nil, fmt.Errorf("%s: %d parent links without edge (first %s→%s): %w",
			MethodBuildNetwork, len(missing), missing[0].From, missing[0].To, ErrConstructFailed)
	}
	if err := dfs.VerifyOrder(net, net.Keys()); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodBuildNetwork, err, ErrConstructFailed)
	}
	if _, err := dfs.TopologicalSort(net); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodBuildNetwork, err, ErrConstructFailed)
	}

	return net, nil
}

// DynamicNetwork is a thin helper: BuildNetwork(opts, Dynamic(n)).
func DynamicNetwork(n int, opts ...BuilderOption) (*core.Network, error) {
	return BuildNetwork(opts, Dynamic(n))
}
