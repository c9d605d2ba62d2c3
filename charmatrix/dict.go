// SPDX-License-Identifier: MIT
//
// File: dict.go
// Role: building matrices from plain label → values mappings.
// Determinism:
//   - FromDict visits labels in ascending order, so new taxa enter the
//     namespace in a stable order.

package charmatrix

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/taxon"
)

// Entry is one row for FromEntries / Populate. Taxon, when set, is used
// directly (and added to the namespace if missing); otherwise Label is
// resolved through the namespace, creating a taxon when absent.
// Values is anything the variant coercer accepts, including a *Sequence,
// which is stored as is.
type Entry struct {
	Label  string
	Taxon  *taxon.Taxon
	Values any
}

// FromDict builds a matrix of data type dt from a label → values map.
//
// Options: WithNamespace (populate an existing namespace), WithLabel,
// WithLogger, WithDefaultAlphabet (needed for standard data given as
// symbols) and WithCaseSensitiveLabels (label resolution policy).
func FromDict[V any](dt DataType, src map[string]V, opts ...Option) (*Matrix, error) {
	labels := make([]string, 0, len(src))
	for l := range src {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	entries := make([]Entry, len(labels))
	for i, l := range labels {
		entries[i] = Entry{Label: l, Values: src[l]}
	}

	return FromEntries(dt, entries, opts...)
}

// FromEntries builds a matrix of data type dt from ordered entries.
func FromEntries(dt DataType, entries []Entry, opts ...Option) (*Matrix, error) {
	dt, err := MatrixType(string(dt))
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	m := newMatrix(variants[dt], o)
	if err := m.Populate(entries, o.caseSensitive); err != nil {
		return nil, err
	}

	return m, nil
}

// Populate adds or replaces the sequences of entries.
// All values are coerced before any taxon is resolved, so a coercion
// failure leaves both the matrix and its namespace untouched.
func (m *Matrix) Populate(entries []Entry, caseSensitive bool) error {
	seqs := make([]*Sequence, len(entries))
	for i, e := range entries {
		s, err := m.Coerce(e.Values)
		if err != nil {
			return errors.Wrapf(err, "entry %d (%q)", i, entryName(e))
		}
		if err := m.checkStates(s); err != nil {
			return errors.Wrapf(err, "entry %d (%q)", i, entryName(e))
		}
		seqs[i] = s
	}
	for i, e := range entries {
		t := e.Taxon
		if t != nil {
			_ = m.ns.AddTaxon(t)
		} else {
			t = m.ns.RequireTaxon(e.Label, caseSensitive)
		}
		m.seqs[t] = seqs[i]
	}

	return nil
}

func entryName(e Entry) string {
	if e.Taxon != nil {
		return e.Taxon.Label()
	}

	return e.Label
}
