// SPDX-License-Identifier: MIT
// Package: dynpgm/pgm
//
// yaml.go — structured YAML dump of a model.
//
// The dump is a plain record of what the text format encodes, keyed by the
// flattened variable names. DecodeYAML reads it back into a ModelDoc; it is
// not a parser for the model-description text.

package pgm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dynpgm/core"
)

// ModelDoc is the YAML shape of a Model.
type ModelDoc struct {
	Name       string        `yaml:"name"`
	Horizon    int           `yaml:"horizon"`
	Complexity int           `yaml:"complexity"`
	Variables  []VariableDoc `yaml:"variables"`
	Edges      []EdgeDoc     `yaml:"edges"`
	Query      QueryDoc      `yaml:"query"`
}

// VariableDoc is one variable with its table.
type VariableDoc struct {
	Name    string      `yaml:"name"`
	Kind    string      `yaml:"kind"`
	Low     int         `yaml:"low"`
	High    int         `yaml:"high"`
	Parents []string    `yaml:"parents,omitempty,flow"`
	Table   [][]float64 `yaml:"table,flow"`
}

// EdgeDoc is one parent→child connection.
type EdgeDoc struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// TermDoc is one weighted query term.
type TermDoc struct {
	Weight int    `yaml:"weight"`
	Var    string `yaml:"var"`
}

// QueryDoc is the query in both structured and rendered form.
type QueryDoc struct {
	Expression string    `yaml:"expression"`
	Terms      []TermDoc `yaml:"terms"`
	Target     string    `yaml:"target"`
	Evidence   string    `yaml:"evidence"`
	Lower      float64   `yaml:"lower"`
	Upper      float64   `yaml:"upper"`
}

// Doc converts m into its YAML record.
func (m *Model) Doc() (ModelDoc, error) {
	if m == nil || m.Network == nil {
		return ModelDoc{}, ErrNilModel
	}

	doc := ModelDoc{
		Name:       m.Name,
		Horizon:    m.Horizon,
		Complexity: m.Complexity,
	}
	for _, v := range m.Network.Variables() {
		vd := VariableDoc{
			Name:  v.Key.String(),
			Kind:  domainKind(v.Domain.Kind),
			Low:   v.Domain.Low,
			High:  v.Domain.High,
			Table: v.Table,
		}
		for _, p := range v.Parents {
			vd.Parents = append(vd.Parents, p.String())
		}
		doc.Variables = append(doc.Variables, vd)
	}
	for _, e := range m.Network.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From.String(), To: e.To.String()})
	}

	q := m.Query
	doc.Query = QueryDoc{
		Expression: q.String(),
		Target:     q.Target().String(),
		Evidence:   q.Evidence().String(),
	}
	doc.Query.Lower, doc.Query.Upper = q.Bounds()
	for _, t := range q.Terms() {
		doc.Query.Terms = append(doc.Query.Terms, TermDoc{Weight: t.Weight, Var: t.Var.String()})
	}

	return doc, nil
}

// EncodeYAML writes the YAML record of m to w with two-space indentation.
func EncodeYAML(w io.Writer, m *Model) error {
	doc, err := m.Doc()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("EncodeYAML: %w", err)
	}

	return enc.Close()
}

// DecodeYAML reads one ModelDoc from r.
func DecodeYAML(r io.Reader) (*ModelDoc, error) {
	var doc ModelDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("DecodeYAML: %w", err)
	}

	return &doc, nil
}

func domainKind(k core.DomainKind) string {
	if k == core.Numeric {
		return "numeric"
	}

	return "discrete"
}
