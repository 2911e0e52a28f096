// Package builder constructs dynamic Bayesian network instances on a
// core.Network together with the expectation query that accompanies them.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildNetwork:     creates a core.Network, resolves options, runs constructors.
//     – Constructor:      func(*core.Network, builderConfig) error.
//   - Topology constructors:
//     – Dynamic(n):       chains A0…An, B0…Bn, C0…Cn with their tables.
//   - Query construction:
//     – BuildQuery(n, j): weighted expectation over B0…B{j-2} plus Cn, given A0.
//   - Configuration primitives (BuilderOption):
//     – WithTable:        replace the table of one chain role.
//     – WithTolerance:    row-sum tolerance of the target network.
//     – WithNumericRange: [low, high] of chain C.
//   - Validation helpers:
//     – validateHorizon:    n ≥ 0.
//     – validateComplexity: j ≥ 2 and j-2 ≤ n.
//
// Topology of Dynamic(n):
//
//	A0 ──► B0          (seed)
//	B{i-1} ──► Ai ◄── C{i-1}
//	B{i-1} ──► Bi ◄── Ai
//	C{i-1} ──► Ci
//
// Guarantees:
//
//   - Determinism: same (n, j, options) ⇒ identical variables, edges and query.
//   - All parameter validation happens before the first variable is added.
//   - Tables are checked by core on insertion; a bad custom table surfaces as
//     core.ErrRowCount / ErrRowWidth / ErrProbability / ErrRowSum.
//   - The finished network is verified acyclic with dfs.TopologicalSort.
//   - Constructors never panic; option constructors panic on meaningless values.
package builder
