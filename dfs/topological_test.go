package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynpgm/core"
	"github.com/katalvlaran/dynpgm/dfs"
)

// mapGraph is a hand-built Digraph; it may contain cycles, which a
// core.Network can never hold.
type mapGraph struct {
	keys []core.Key
	adj  map[core.Key][]core.Key
	fail bool
}

func (m *mapGraph) Keys() []core.Key { return m.keys }

func (m *mapGraph) Children(k core.Key) ([]core.Key, error) {
	if m.fail {
		return nil, errors.New("boom")
	}
	return m.adj[k], nil
}

var (
	a0 = core.K(core.ChainA, 0)
	b0 = core.K(core.ChainB, 0)
	c0 = core.K(core.ChainC, 0)
)

// position returns index of k in order or -1 if not found.
func position(order []core.Key, k core.Key) int {
	for i, x := range order {
		if x == k {
			return i
		}
	}

	return -1
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	var typed *core.Network
	_, err = dfs.TopologicalSort(typed)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_Network(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddVariable(core.Variable{Key: a0, Domain: core.Binary, Table: [][]float64{{0.5, 0.5}}}))
	require.NoError(t, n.AddVariable(core.Variable{Key: c0, Domain: core.Range(300, 500), Table: [][]float64{{0.5, 0.5}}}))
	require.NoError(t, n.AddVariable(core.Variable{
		Key: b0, Domain: core.Binary, Parents: []core.Key{a0, c0},
		Table: [][]float64{{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}},
	}))
	require.NoError(t, n.AddEdge(a0, b0))
	require.NoError(t, n.AddEdge(c0, b0))

	order, err := dfs.TopologicalSort(n)
	require.NoError(t, err)
	assert.Len(t, order, 3)
	assert.Less(t, position(order, a0), position(order, b0))
	assert.Less(t, position(order, c0), position(order, b0))

	assert.NoError(t, dfs.VerifyOrder(n, n.Keys()))
	assert.ErrorIs(t, dfs.VerifyOrder(n, []core.Key{b0, a0, c0}), dfs.ErrOrderViolation)
	assert.ErrorIs(t, dfs.VerifyOrder(n, []core.Key{a0, c0}), dfs.ErrOrderViolation)
	assert.ErrorIs(t, dfs.VerifyOrder(n, []core.Key{a0, a0, b0}), dfs.ErrOrderViolation)
}

func TestTopo_Cycle(t *testing.T) {
	g := &mapGraph{
		keys: []core.Key{a0, b0},
		adj:  map[core.Key][]core.Key{a0: {b0}, b0: {a0}},
	}
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopo_NeighborFetch(t *testing.T) {
	g := &mapGraph{keys: []core.Key{a0}, fail: true}
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrNeighborFetch)
	assert.ErrorIs(t, dfs.VerifyOrder(g, []core.Key{a0}), dfs.ErrNeighborFetch)
}

func TestTopo_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &mapGraph{keys: []core.Key{a0}, adj: map[core.Key][]core.Key{}}
	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
