// Package core provides the in-memory network store used by the model builders:
// structured variable keys, variables with conditional probability tables, and
// parent→child edges, guarded by a single sync.RWMutex.
//
// A Network N = (V,E) is a Bayesian network skeleton with these guarantees:
//
//   - Structured identity: every variable is addressed by Key{Chain, Index};
//     the compound textual name ("B3") exists only through Key.String().
//   - Insertion order: Variables() and Edges() return the exact order in which
//     entries were added; there is no sorting and no map iteration on output.
//   - No forward references: a variable may only name parents that are
//     already declared, so declaration order is a topological order.
//   - Table invariants checked on insertion:
//     – every row has exactly RowWidth (2) entries;
//     – every entry lies in [0,1];
//     – every row sums to 1 within the network tolerance;
//     – the row count equals 2^len(Parents).
//   - Edge consistency: AddEdge(u,v) succeeds only if u ∈ v.Parents.
//
// Row order convention:
//
//	For parents (P1, P2, …, Pk) the row index r encodes the parent states with
//	P1 as the most-significant bit:
//
//	    r = s(P1)·2^(k-1) + s(P2)·2^(k-2) + … + s(Pk)
//
//	so for two parents the rows are (0,0), (0,1), (1,0), (1,1).
//	RowIndex and ParentStates convert between the two forms.
//
// Configuration options (NetworkOption):
//
//	– WithTolerance(eps float64)
//	    Absolute tolerance for |Σrow − 1|. Defaults to DefaultTolerance.
//
// Errors (sentinels, match with errors.Is):
//
//	ErrDuplicateVariable – a variable with the same Key already exists.
//	ErrUnknownParent     – a parent or edge endpoint is not declared.
//	ErrRowCount          – len(Table) != 2^len(Parents).
//	ErrRowWidth          – a row does not have RowWidth entries.
//	ErrProbability       – an entry is outside [0,1] or not finite.
//	ErrRowSum            – a row does not sum to 1 within tolerance.
//	ErrNotParent         – edge source is not a declared parent of its target.
//	ErrDuplicateEdge     – the same (From,To) pair was already added.
//	ErrBadDomain         – Domain.Low > Domain.High.
//
// Complexity:
//
//	AddVariable  O(p + r) where p = |Parents|, r = |Table|
//	AddEdge      O(p)
//	Variables    O(V) copy
//	Edges        O(E) copy
//	Children     O(1) lookup + O(out-degree) copy
package core
