// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() and Children() return entries in insertion order.
package core

import "fmt"

// AddEdge records the connection from→to.
//
// Implementation:
//   - Stage 1: Both endpoints must be declared (ErrUnknownParent).
//   - Stage 2: from must appear in to.Parents (ErrNotParent).
//   - Stage 3: Reject a repeated (from,to) pair (ErrDuplicateEdge).
//   - Stage 4: Append to the ordered edge list and the children index.
//
// Complexity:
//   - Time O(p) where p = |to.Parents|, Space O(1) amortized.
func (n *Network) AddEdge(from, to Key) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	// Stage 1: endpoints.
	if _, ok := n.index[from]; !ok {
		return fmt.Errorf("AddEdge(%s→%s): source: %w", from, to, ErrUnknownParent)
	}
	ti, ok := n.index[to]
	if !ok {
		return fmt.Errorf("AddEdge(%s→%s): target: %w", from, to, ErrUnknownParent)
	}

	// Stage 2: consistency with declared parents.
	isParent := false
	for _, p := range n.vars[ti].Parents {
		if p == from {
			isParent = true
			break
		}
	}
	if !isParent {
		return fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrNotParent)
	}

	// Stage 3: no parallel edges.
	e := Edge{From: from, To: to}
	if _, dup := n.edgeSet[e]; dup {
		return fmt.Errorf("AddEdge(%s→%s): %w", from, to, ErrDuplicateEdge)
	}

	// Stage 4: register.
	n.edgeSet[e] = struct{}{}
	n.edges = append(n.edges, e)
	n.children[from] = append(n.children[from], to)

	return nil
}

// HasEdge reports whether from→to was added.
func (n *Network) HasEdge(from, to Key) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.edgeSet[Edge{From: from, To: to}]

	return ok
}

// Edges returns a copy of all edges in insertion order.
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return append([]Edge(nil), n.edges...)
}

// EdgeCount returns |E|.
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.edges)
}

// Children returns the targets of edges leaving k, in insertion order.
func (n *Network) Children(k Key) ([]Key, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if _, ok := n.index[k]; !ok {
		return nil, fmt.Errorf("Children(%s): %w", k, ErrUnknownParent)
	}

	return append([]Key(nil), n.children[k]...), nil
}

// MissingEdges returns every (parent, child) pair declared through Parents
// that has no matching edge, in declaration order. An empty result means the
// edge list and the parent lists describe the same graph.
func (n *Network) MissingEdges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []Edge
	for _, v := range n.vars {
		for _, p := range v.Parents {
			e := Edge{From: p, To: v.Key}
			if _, ok := n.edgeSet[e]; !ok {
				out = append(out, e)
			}
		}
	}

	return out
}
