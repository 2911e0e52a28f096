// SPDX-License-Identifier: MIT
// Package: dynpgm/builder
//
// impl_query.go - weighted expectation query over a dynamic network.
//
// Contract:
//   - n ≥ 0 (ErrInvalidHorizon), j ≥ 2 (ErrInvalidComplexity),
//     j-2 ≤ n (ErrInvalidComplexity + ErrOutOfRange).
//   - m = j-1 weighted terms w_k*B_k with w_k = 10k+1, k = 0..m-1.
//   - Final unweighted term C_n, evidence A_0, bounds (0.05, 0.95).
//
// Rendering:
//
//	E[1*B0 + 11*B1 + C2 | A0] #Q1<0.05,0.95>

package builder

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/dynpgm/core"
)

// Term is one weighted summand of the query.
type Term struct {
	Weight int
	Var    core.Key
}

// Query is an immutable weighted-expectation query.
type Query struct {
	terms    []Term
	target   core.Key
	evidence core.Key
	lower    float64
	upper    float64
}

// BuildQuery constructs the query for horizon n and complexity j.
func BuildQuery(n, j int) (Query, error) {
	if err := validateHorizon(MethodQuery, n); err != nil {
		return Query{}, err
	}
	if err := validateComplexity(MethodQuery, n, j); err != nil {
		return Query{}, err
	}

	m := j - 1
	terms := make([]Term, m)
	for k := 0; k < m; k++ {
		terms[k] = Term{Weight: WeightStep*k + WeightOffset, Var: core.K(core.ChainB, k)}
	}

	return Query{
		terms:    terms,
		target:   core.K(core.ChainC, n),
		evidence: core.K(core.ChainA, 0),
		lower:    QueryLower,
		upper:    QueryUpper,
	}, nil
}

// Terms returns a copy of the weighted terms.
func (q Query) Terms() []Term { return append([]Term(nil), q.terms...) }

// Target returns the mandatory final (unweighted) term.
func (q Query) Target() core.Key { return q.target }

// Evidence returns the conditioning variable.
func (q Query) Evidence() core.Key { return q.evidence }

// Bounds returns the (lower, upper) pair of the #Q1 annotation.
func (q Query) Bounds() (float64, float64) { return q.lower, q.upper }

// References returns every variable the query mentions: terms, target, evidence.
func (q Query) References() []core.Key {
	out := make([]core.Key, 0, len(q.terms)+2)
	for _, t := range q.terms {
		out = append(out, t.Var)
	}

	return append(out, q.target, q.evidence)
}

// String renders the query in the model-description syntax.
func (q Query) String() string {
	var b strings.Builder
	b.WriteString("E[")
	for _, t := range q.terms {
		b.WriteString(strconv.Itoa(t.Weight))
		b.WriteByte('*')
		b.WriteString(t.Var.String())
		b.WriteString(" + ")
	}
	b.WriteString(q.target.String())
	b.WriteString(" | ")
	b.WriteString(q.evidence.String())
	b.WriteString("] #Q1<")
	b.WriteString(strconv.FormatFloat(q.lower, 'g', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(q.upper, 'g', -1, 64))
	b.WriteByte('>')

	return b.String()
}
