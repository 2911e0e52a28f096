// SPDX-License-Identifier: MIT
// Package: dynpgm/core
//
// types.go - Key, Domain, Variable, Edge, Network, sentinel errors and NewNetwork.

package core

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for core network operations.
var (
	// ErrDuplicateVariable indicates that a variable with the same Key is already declared.
	ErrDuplicateVariable = errors.New("core: duplicate variable")

	// ErrUnknownParent indicates a reference to a variable that is not declared (yet).
	ErrUnknownParent = errors.New("core: unknown variable")

	// ErrRowCount indicates that the number of table rows is not 2^len(Parents).
	ErrRowCount = errors.New("core: table row count does not match parents")

	// ErrRowWidth indicates that a table row does not have RowWidth entries.
	ErrRowWidth = errors.New("core: table row has wrong width")

	// ErrProbability indicates a table entry outside [0,1] (or NaN/Inf).
	ErrProbability = errors.New("core: probability out of range")

	// ErrRowSum indicates a table row whose entries do not sum to 1.
	ErrRowSum = errors.New("core: table row does not sum to 1")

	// ErrNotParent indicates an edge whose source is not a declared parent of its target.
	ErrNotParent = errors.New("core: edge source is not a parent of target")

	// ErrDuplicateEdge indicates that the same (From,To) edge was already added.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadDomain indicates a domain with Low > High.
	ErrBadDomain = errors.New("core: invalid domain bounds")
)

// RowWidth is the number of entries of every probability row. All variables,
// including the numeric-range ones, carry a two-state table.
const RowWidth = 2

// DefaultTolerance is the absolute tolerance for |Σrow − 1|.
const DefaultTolerance = 1e-9

// Chain tags one of the parallel variable families.
type Chain byte

// Known chains of the dynamic topology.
const (
	ChainA Chain = 'A'
	ChainB Chain = 'B'
	ChainC Chain = 'C'
)

// String returns the single-letter chain tag.
func (c Chain) String() string { return string(rune(c)) }

// Key is the structured identity of a variable: chain tag plus time index.
type Key struct {
	Chain Chain
	Index int
}

// K is a shorthand constructor for Key.
func K(c Chain, i int) Key { return Key{Chain: c, Index: i} }

// String flattens the key into the compound name used by the text format ("B3").
func (k Key) String() string {
	return k.Chain.String() + strconv.Itoa(k.Index)
}

// DomainKind distinguishes discrete from numeric-range domains.
type DomainKind int

const (
	// Discrete is a finite integer domain such as {0,1}.
	Discrete DomainKind = iota
	// Numeric is a bounded numeric range such as [300,500].
	Numeric
)

// String returns "discrete" or "numeric".
func (d DomainKind) String() string {
	if d == Numeric {
		return "numeric"
	}

	return "discrete"
}

// Domain is the [Low, High] annotation attached to a variable.
type Domain struct {
	Kind DomainKind
	Low  int
	High int
}

// Binary is the discrete {0,1} domain.
var Binary = Domain{Kind: Discrete, Low: 0, High: 1}

// Range returns a numeric domain [low, high].
func Range(low, high int) Domain { return Domain{Kind: Numeric, Low: low, High: high} }

// Variable is a node of the network together with its conditional probability table.
//
// Parents order is significant: the first parent is the most-significant bit of
// the table row index (see RowIndex).
type Variable struct {
	Key     Key
	Domain  Domain
	Parents []Key
	Table   [][]float64
}

// Edge is a directed parent→child connection.
type Edge struct {
	From Key
	To   Key
}

// NetworkOption configures a Network before use.
type NetworkOption func(n *Network)

// WithTolerance sets the absolute row-sum tolerance.
// Panics on negative values to surface programmer error early.
func WithTolerance(eps float64) NetworkOption {
	if eps < 0 {
		panic("core: WithTolerance(eps<0)")
	}
	return func(n *Network) { n.tolerance = eps }
}

// Network is the in-memory Bayesian network skeleton.
//
// mu guards all fields. vars and edges keep insertion order; index and
// edgeSet provide O(1) membership.
type Network struct {
	mu sync.RWMutex

	tolerance float64

	vars     []*Variable
	index    map[Key]int // Key → position in vars
	edges    []Edge
	edgeSet  map[Edge]struct{}
	children map[Key][]Key // From → To in edge order
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		tolerance: DefaultTolerance,
		index:     make(map[Key]int),
		edgeSet:   make(map[Edge]struct{}),
		children:  make(map[Key][]Key),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Tolerance returns the row-sum tolerance of n.
func (n *Network) Tolerance() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.tolerance
}
