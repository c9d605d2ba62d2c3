// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: the structured document model shared by the yaml and cbor schemas,
// and its conversion to and from charmatrix.Matrix.
// Determinism:
//   - Taxa, sequences, subsets and annotations are emitted in matrix order,
//     so equal matrices encode to equal bytes.

package dataio

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/annotation"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/statealphabet"
	"go.uber.org/zap"
)

type document struct {
	Matrices []matrixDoc `yaml:"matrices" cbor:"matrices"`
}

type matrixDoc struct {
	Label    string `yaml:"label,omitempty" cbor:"label,omitempty"`
	OID      string `yaml:"oid,omitempty" cbor:"oid,omitempty"`
	DataType string `yaml:"data_type,omitempty" cbor:"data_type,omitempty"`
	// Alphabet lists the fundamental symbols of a standard matrix, gap excluded.
	Alphabet    string          `yaml:"alphabet,omitempty" cbor:"alphabet,omitempty"`
	Taxa        []string        `yaml:"taxa,omitempty" cbor:"taxa,omitempty"`
	Sequences   []sequenceDoc   `yaml:"sequences" cbor:"sequences"`
	Subsets     []subsetDoc     `yaml:"subsets,omitempty" cbor:"subsets,omitempty"`
	Annotations []annotationDoc `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
}

type sequenceDoc struct {
	Taxon       string          `yaml:"taxon" cbor:"taxon"`
	Symbols     string          `yaml:"symbols,omitempty" cbor:"symbols,omitempty"`
	Values      []float64       `yaml:"values,omitempty,flow" cbor:"values,omitempty"`
	Annotations []annotationDoc `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
}

type subsetDoc struct {
	Label   string `yaml:"label" cbor:"label"`
	Indices []int  `yaml:"indices,flow" cbor:"indices"`
}

type annotationDoc struct {
	Name        string          `yaml:"name" cbor:"name"`
	Value       string          `yaml:"value" cbor:"value"`
	DataType    string          `yaml:"data_type,omitempty" cbor:"data_type,omitempty"`
	Annotations []annotationDoc `yaml:"annotations,omitempty" cbor:"annotations,omitempty"`
}

// ---------- Matrix → document ----------

func toDocument(m *charmatrix.Matrix) matrixDoc {
	md := matrixDoc{
		Label:       m.Label(),
		OID:         m.OID(),
		DataType:    string(m.DataType()),
		Taxa:        m.Namespace().Labels(),
		Annotations: annotationDocs(m.Annotations()),
	}
	if m.DataType() == charmatrix.Standard {
		if a, err := m.DefaultAlphabet(); err == nil {
			md.Alphabet = standardSymbols(a)
		}
	}
	for _, it := range m.Items() {
		sd := sequenceDoc{Taxon: it.Taxon.Label(), Annotations: annotationDocs(it.Sequence.Annotations())}
		if m.Discrete() {
			sd.Symbols = it.Sequence.String()
		} else {
			for _, c := range it.Sequence.Values() {
				sd.Values = append(sd.Values, c.Value)
			}
		}
		md.Sequences = append(md.Sequences, sd)
	}
	for _, s := range m.Subsets() {
		md.Subsets = append(md.Subsets, subsetDoc{Label: s.Label(), Indices: s.Indices()})
	}

	return md
}

func standardSymbols(a *statealphabet.Alphabet) string {
	var out []byte
	for _, s := range a.FundamentalStates() {
		if s.Symbol != statealphabet.GapSymbol {
			out = append(out, s.Symbol...)
		}
	}

	return string(out)
}

func annotationDocs(s *annotation.Set) []annotationDoc {
	var out []annotationDoc
	for _, a := range s.Items() {
		out = append(out, annotationDoc{
			Name:        a.Name,
			Value:       a.Value,
			DataType:    a.DataType,
			Annotations: annotationDocs(a.Annotations()),
		})
	}

	return out
}

// ---------- document → Matrix ----------

func fromDocument(doc document, req charmatrix.ReadRequest, schema string) ([]*charmatrix.Matrix, error) {
	out := make([]*charmatrix.Matrix, 0, len(doc.Matrices))
	for i, md := range doc.Matrices {
		m, err := fromMatrixDoc(md, req)
		if err != nil {
			return nil, errors.Wrapf(err, "%s matrix %d", schema, i)
		}
		out = append(out, m)
	}
	req.Logger.Debug("read document",
		zap.String(charmatrix.FieldSchema, schema),
		zap.Int("matrices", len(out)))

	return out, nil
}

func fromMatrixDoc(md matrixDoc, req charmatrix.ReadRequest) (*charmatrix.Matrix, error) {
	dt := req.DataType
	if md.DataType != "" {
		var err error
		if dt, err = charmatrix.MatrixType(md.DataType); err != nil {
			return nil, err
		}
	}
	a, err := standardAlphabet(dt, nil, md.Alphabet)
	if err != nil {
		return nil, err
	}
	m, err := newMatrix(dt, req, md.Label, a)
	if err != nil {
		return nil, err
	}
	for _, l := range md.Taxa {
		req.Namespace.RequireTaxon(l, true)
	}

	entries := make([]charmatrix.Entry, 0, len(md.Sequences))
	for i, sd := range md.Sequences {
		var raw any = sd.Symbols
		if !m.Discrete() {
			raw = sd.Values
		}
		s, err := m.Coerce(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "sequence %d (%q)", i, sd.Taxon)
		}
		if err := addAnnotations(s.Annotations(), sd.Annotations); err != nil {
			return nil, err
		}
		entries = append(entries, charmatrix.Entry{Label: sd.Taxon, Values: s})
	}
	if err := m.Populate(entries, true); err != nil {
		return nil, err
	}
	for _, sd := range md.Subsets {
		if _, err := m.NewSubset(sd.Label, sd.Indices...); err != nil {
			return nil, errors.Mark(err, ErrMalformed)
		}
	}
	if err := addAnnotations(m.Annotations(), md.Annotations); err != nil {
		return nil, err
	}

	return m, nil
}

func addAnnotations(dst *annotation.Set, docs []annotationDoc) error {
	for _, d := range docs {
		a, err := annotation.New(d.Name, d.Value)
		if err != nil {
			return errors.Mark(errors.Wrap(err, "annotation"), ErrMalformed)
		}
		if d.DataType != "" {
			a.DataType = d.DataType
		}
		if err := addAnnotations(a.Annotations(), d.Annotations); err != nil {
			return err
		}
		_ = dst.Add(a)
	}

	return nil
}
