// SPDX-License-Identifier: MIT
// Package: dynpgm/pgm
//
// model.go — Model and the Generate entry point.
//
// Contract:
//   - Generate validates (n, j) before building anything; on error no model
//     is returned.
//   - The network is owned by the returned Model and never shared between
//     calls.

package pgm

import (
	"fmt"

	"github.com/katalvlaran/dynpgm/builder"
	"github.com/katalvlaran/dynpgm/core"
)

// MethodGenerate prefixes errors returned by Generate.
const MethodGenerate = "Generate"

// Model is one generated instance: the dynamic network of horizon Horizon and
// the query built for complexity Complexity.
type Model struct {
	Name       string
	Horizon    int
	Complexity int
	Network    *core.Network
	Query      builder.Query
}

// Name returns the model name used in the description header ("dynamic_<n>").
func Name(n int) string {
	return fmt.Sprintf("dynamic_%d", n)
}

// Generate builds the model for horizon n and query complexity j.
//
// Steps:
//  1. builder.Validate(n, j): both parameters are checked up front.
//  2. builder.DynamicNetwork(n, opts...): variables, tables and edges.
//  3. builder.BuildQuery(n, j).
//  4. Every query reference must resolve in the network (ErrUnresolvedQuery).
func Generate(n, j int, opts ...builder.BuilderOption) (*Model, error) {
	// 1. All-or-nothing: reject bad input before construction.
	if err := builder.Validate(n, j); err != nil {
		return nil, fmt.Errorf("%s(%d, %d): %w", MethodGenerate, n, j, err)
	}

	// 2. Network.
	net, err := builder.DynamicNetwork(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s(%d, %d): %w", MethodGenerate, n, j, err)
	}

	// 3. Query.
	q, err := builder.BuildQuery(n, j)
	if err != nil {
		return nil, fmt.Errorf("%s(%d, %d): %w", MethodGenerate, n, j, err)
	}

	// 4. Cross-check.
	for _, ref := range q.References() {
		if !net.HasVariable(ref) {
			return nil, fmt.Errorf("%s(%d, %d): %s: %w", MethodGenerate, n, j, ref, ErrUnresolvedQuery)
		}
	}

	return &Model{
		Name:       Name(n),
		Horizon:    n,
		Complexity: j,
		Network:    net,
		Query:      q,
	}, nil
}

// FileName returns the conventional base name for (n, j) in format f,
// e.g. "dynamic_3_query_2.pgm".
func FileName(n, j int, f Format) string {
	return fmt.Sprintf("%s_query_%d%s", Name(n), j, f.Ext())
}
