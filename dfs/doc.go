// Package dfs implements depth-first ordering checks on directed networks.
//
// What:
//
//   - TopologicalSort: computes a linear ordering of variables such that for
//     every edge u→v, u appears before v. Returns ErrCycleDetected (wrapped
//     with the offending key) if the edge set is not acyclic.
//   - VerifyOrder: checks that a given sequence (typically the declaration
//     order of a core.Network) is already topological.
//
// Both work on any Digraph, so *core.Network satisfies them directly and tests
// can supply hand-built cyclic graphs.
//
// Determinism:
//
//   - Roots are visited in Keys() order and children in Children() order, so
//     the result is a pure function of the graph's insertion order.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - VerifyOrder:     Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph is nil
//   - ErrCycleDetected   cycle discovered
//   - ErrNeighborFetch   Children() failed
//   - ErrOrderViolation  VerifyOrder found a child before its parent
//   - context.Canceled   via WithCancelContext
package dfs
