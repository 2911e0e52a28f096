// SPDX-License-Identifier: MIT
// Package: dynpgm/pgm
//
// render.go — model-description text output.
//
// Contract:
//   - Connections follow core.Network.Edges() order, nodes follow
//     core.Network.Variables() order; nothing is sorted.
//   - Every table row ends with ';'.
//   - Numbers use the shortest round-trip form (0.125, not 0.125000).
//
// Complexity:
//   - Time O(V + E + Σ|table|), one buffer, one Write.

package pgm

import (
	"bytes"
	"io"
	"strconv"

	"github.com/katalvlaran/dynpgm/core"
)

const rowIndent = "    "

// WriteTo renders m to w. It implements io.WriterTo.
// The text is assembled in memory first so w sees a single Write.
func (m *Model) WriteTo(w io.Writer) (int64, error) {
	if m == nil || m.Network == nil {
		return 0, ErrNilModel
	}
	n, err := w.Write(m.Bytes())

	return int64(n), err
}

// Render writes the text form of m to w.
func Render(w io.Writer, m *Model) error {
	_, err := m.WriteTo(w)

	return err
}

// Bytes returns the text form of m, or nil for a nil model.
func (m *Model) Bytes() []byte {
	if m == nil || m.Network == nil {
		return nil
	}
	var b bytes.Buffer
	writeHeader(&b, m)
	writeConnections(&b, m.Network.Edges())
	writeNodes(&b, m.Network.Variables())
	b.WriteString("queries:\n")
	b.WriteString(m.Query.String())
	b.WriteByte('\n')

	return b.Bytes()
}

// String is Bytes as a string.
func (m *Model) String() string { return string(m.Bytes()) }

func writeHeader(b *bytes.Buffer, m *Model) {
	b.WriteString("/**\n* dynamic bayesian network with T=")
	b.WriteString(strconv.Itoa(m.Horizon))
	b.WriteString("\n* |V|=")
	b.WriteString(strconv.Itoa(m.Network.VariableCount()))
	b.WriteString(" |E|=")
	b.WriteString(strconv.Itoa(m.Network.EdgeCount()))
	b.WriteString("\n*/\n")
	b.WriteString(m.Name)
	b.WriteString(" bayesian\n\n")
}

func writeConnections(b *bytes.Buffer, edges []core.Edge) {
	b.WriteString("connections:\n")
	for _, e := range edges {
		b.WriteString(e.From.String())
		b.WriteString(" -> ")
		b.WriteString(e.To.String())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func writeNodes(b *bytes.Buffer, vars []core.Variable) {
	b.WriteString("nodes:\n")
	for _, v := range vars {
		writeNode(b, v)
		b.WriteByte('\n')
	}
}

// writeNode emits one declaration:
//
//	A1<B0, C0> : [0, 1] {
//	    0.125, 0.875;
//	    ...
//	}
func writeNode(b *bytes.Buffer, v core.Variable) {
	b.WriteString(v.Key.String())
	if len(v.Parents) > 0 {
		b.WriteByte('<')
		for i, p := range v.Parents {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteByte('>')
	}
	b.WriteString(" : [")
	b.WriteString(strconv.Itoa(v.Domain.Low))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(v.Domain.High))
	b.WriteString("] {\n")
	for _, row := range v.Table {
		b.WriteString(rowIndent)
		for i, x := range row {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatProb(x))
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
}

func formatProb(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
