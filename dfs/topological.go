package dfs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/katalvlaran/dynpgm/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph Digraph
	opts  topoOptions
	state map[core.Key]int // White/Gray/Black
	order []core.Key       // post-order
}

// TopologicalSort computes a topological ordering of all variables in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns an error wrapping ErrCycleDetected.
// If Children lookup fails, returns an error wrapping ErrNeighborFetch.
func TopologicalSort(g Digraph, options ...TopoOption) ([]core.Key, error) {
	// 1. Validate graph (typed nil pointers included)
	if isNil(g) {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	keys := g.Keys()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[core.Key]int, len(keys)),
		order: make([]core.Key, 0, len(keys)),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, k := range keys {
		if sorter.state[k] == White {
			if err := sorter.visit(k); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from k, marking states and detecting cycles.
func (t *topoSorter) visit(k core.Key) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Gray means a back-edge
	if t.state[k] == Gray {
		return fmt.Errorf("dfs: back-edge into %s: %w", k, ErrCycleDetected)
	}
	if t.state[k] == Black {
		return nil
	}
	t.state[k] = Gray

	children, err := t.graph.Children(k)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, c := range children {
		if err = t.visit(c); err != nil {
			return err
		}
	}

	t.state[k] = Black
	t.order = append(t.order, k)

	return nil
}

// VerifyOrder checks that every edge u→v of g has u before v in order, and
// that order lists each key of g exactly once.
func VerifyOrder(g Digraph, order []core.Key) error {
	if isNil(g) {
		return ErrGraphNil
	}

	pos := make(map[core.Key]int, len(order))
	for i, k := range order {
		if _, dup := pos[k]; dup {
			return fmt.Errorf("dfs: %s listed twice: %w", k, ErrOrderViolation)
		}
		pos[k] = i
	}

	keys := g.Keys()
	if len(keys) != len(order) {
		return fmt.Errorf("dfs: order has %d keys, graph has %d: %w", len(order), len(keys), ErrOrderViolation)
	}
	for _, u := range keys {
		pu, ok := pos[u]
		if !ok {
			return fmt.Errorf("dfs: %s missing from order: %w", u, ErrOrderViolation)
		}
		children, err := g.Children(u)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, v := range children {
			if pos[v] <= pu {
				return fmt.Errorf("dfs: %s→%s: %w", u, v, ErrOrderViolation)
			}
		}
	}

	return nil
}

// isNil reports whether g is nil or a typed nil pointer.
func isNil(g Digraph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
