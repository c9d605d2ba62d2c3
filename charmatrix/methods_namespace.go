// SPDX-License-Identifier: MIT
//
// File: methods_namespace.go
// Role: re-homing sequence-map taxa into the matrix namespace after
// SetNamespace or after taxa were keyed from elsewhere.

package charmatrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/taxon"
	"go.uber.org/zap"
)

// ReconstructNamespace re-keys the sequence map onto the matrix namespace.
//
// For every keyed taxon that must move (all of them when unifyByLabel is set,
// otherwise only those outside the namespace) the target is, in order:
//   - mapping[t] when given (added to the namespace if needed),
//   - the namespace taxon with the same label, created when absent
//     (unifyByLabel; caseSensitive selects the label policy),
//   - a new namespace taxon carrying t's label (!unifyByLabel).
//
// Two sequences landing on one taxon fail with ErrMultipleSequences and the
// sequence map is left unchanged; taxa already added to the namespace stay.
// mapping may be nil; resolved pairs are recorded in it when it is not.
func (m *Matrix) ReconstructNamespace(unifyByLabel, caseSensitive bool, mapping taxon.Mapping) error {
	if mapping == nil {
		mapping = make(taxon.Mapping)
	}
	next := make(map[*taxon.Taxon]*Sequence, len(m.seqs))
	moved := 0
	for _, it := range m.allItems() {
		t := it.Taxon
		if unifyByLabel || !m.ns.Has(t) {
			if mapped, ok := mapping[t]; ok {
				if err := m.ns.AddTaxon(mapped); err != nil {
					return errors.Wrapf(err, "ReconstructNamespace: mapping for %s", t)
				}
				t = mapped
			} else {
				if unifyByLabel {
					t = m.ns.RequireTaxon(it.Taxon.Label(), caseSensitive)
				} else {
					t = m.ns.NewTaxon(it.Taxon.Label())
				}
				mapping[it.Taxon] = t
			}
		}
		if _, dup := next[t]; dup {
			return errors.Wrapf(ErrMultipleSequences, "ReconstructNamespace: taxon %s", t)
		}
		if t != it.Taxon {
			moved++
		}
		next[t] = it.Sequence
	}
	m.seqs = next
	m.log.Debug("reconstructed namespace",
		zap.String(FieldMatrix, m.label),
		zap.Int(FieldTaxa, moved),
		zap.Bool("unify_by_label", unifyByLabel))

	return nil
}

// UpdateNamespace adds every keyed taxon missing from the namespace.
func (m *Matrix) UpdateNamespace() {
	for _, it := range m.allItems() {
		if !m.ns.Has(it.Taxon) {
			_ = m.ns.AddTaxon(it.Taxon)
		}
	}
}
