// Package dynpgm generates synthetic dynamic Bayesian network models for
// benchmarking an external inference engine.
//
// A model of horizon n is three parallel chains replicated over time:
//
//	A0 ──► B0
//	B{i-1} ──► Ai ◄── C{i-1}
//	B{i-1} ──► Bi ◄── Ai
//	C{i-1} ──► Ci
//
// with 3(n+1) variables and 5n+1 edges, plus one weighted expectation query
// whose size is set by the complexity parameter j:
//
//	E[1*B0 + 11*B1 + ... + Cn | A0] #Q1<0.05,0.95>
//
// Packages:
//
//	core/    — network store: structured keys, variables, tables, edges, invariants
//	dfs/     — topological ordering and cycle detection over a network
//	builder/ — Dynamic(n) topology constructor and BuildQuery(n, j)
//	pgm/     — Generate, the model-description text format and a YAML dump
//
// The pgmgen command (cmd/pgmgen) writes models/dynamic_<n>_query_<j>.pgm:
//
//	go run ./cmd/pgmgen 3 2
//	go run ./cmd/pgmgen sweep --max-horizon 10 --max-complexity 5
package dynpgm

// Version is the release reported by `pgmgen version`.
var Version = "0.1.0"
