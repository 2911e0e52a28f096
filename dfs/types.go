// Package dfs defines the graph contract, visitation states and sentinel errors.
package dfs

import (
	"errors"

	"github.com/katalvlaran/dynpgm/core"
)

// VertexState represents the DFS visitation state of a variable.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the recursion stack.
	Black        // Black: fully explored.
)

var (
	// ErrGraphNil is returned when a nil Digraph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates a back-edge was found.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve children from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

	// ErrOrderViolation indicates a sequence that is not topological.
	ErrOrderViolation = errors.New("dfs: order violates edge direction")
)

// Digraph is the read-only view the traversals need.
// *core.Network implements it.
type Digraph interface {
	// Keys returns every vertex in a stable order.
	Keys() []core.Key
	// Children returns the targets of edges leaving k in a stable order.
	Children(k core.Key) ([]core.Key, error)
}
