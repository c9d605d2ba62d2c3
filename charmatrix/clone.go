// SPDX-License-Identifier: MIT
//
// File: clone.go
// Role: the four copy contracts of a Matrix.
//
//	ShallowCopy   same namespace, same *Sequence objects, cloned annotations
//	DeepCopy      cloned namespace and taxa, cloned sequences/subsets/annotations
//	ScopedCopy    cloned sequences/subsets/annotations re-keyed onto a target namespace
//	NewFrom       ScopedCopy driven by options (target namespace, label, logger)
//
// Identity:
//   - Alphabets, states and CharacterType objects are never duplicated by a
//     copy. Column types are never mutated in place either: a remap installs
//     new ones, so a copy rebinding its columns leaves the source alone.
//   - Every deep copy threads one copyMemo, so an object reachable from several
//     places (a taxon from the namespace and from the sequence map, a sequence
//     assigned to two taxa) maps to exactly one clone.

package charmatrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
	"go.uber.org/zap"
)

// copyMemo is the explicit old → new handle table of one copy operation.
type copyMemo struct {
	taxa      taxon.Mapping
	sequences map[*Sequence]*Sequence
	subsets   map[*Subset]*Subset
}

func newCopyMemo() *copyMemo {
	return &copyMemo{
		taxa:      make(taxon.Mapping),
		sequences: make(map[*Sequence]*Sequence),
		subsets:   make(map[*Subset]*Subset),
	}
}

// cloneOnto deep-copies m onto ns, re-keying every sequence through memo.taxa.
// Taxa absent from memo.taxa keep their identity.
func (m *Matrix) cloneOnto(ns *taxon.Namespace, memo *copyMemo, op string) *Matrix {
	out := newMatrix(m.v, options{label: m.label, namespace: ns, logger: m.log})
	out.alphabets = append([]*statealphabet.Alphabet(nil), m.alphabets...)
	out.defaultAlphabet = m.defaultAlphabet
	out.characterTypes = append([]*CharacterType(nil), m.characterTypes...)
	for _, it := range m.allItems() {
		out.seqs[memo.taxa.Resolve(it.Taxon)] = it.Sequence.clone(memo)
	}
	for _, s := range m.subsets.list() {
		out.subsets.put(s.clone(memo))
	}
	out.annotations = m.annotations.Clone()
	m.log.Debug("copied matrix",
		zap.String(FieldOperation, op),
		zap.String(FieldMatrix, m.label),
		zap.String(FieldDataType, string(m.v.dataType)),
		zap.Int(FieldTaxa, len(out.seqs)))

	return out
}

// ShallowCopy returns a matrix on the same namespace whose sequence map holds
// the very same *Sequence objects as m. Editing a cell through either matrix
// is visible in both; adding or deleting taxa is not. Subsets and column
// types are shared, annotations are cloned.
func (m *Matrix) ShallowCopy() *Matrix {
	out := m.empty()
	for t, s := range m.seqs {
		out.seqs[t] = s
	}
	out.characterTypes = append([]*CharacterType(nil), m.characterTypes...)
	for _, s := range m.subsets.list() {
		out.subsets.put(s)
	}
	out.annotations = m.annotations.Clone()

	return out
}

// DeepCopy returns a fully independent matrix: the namespace and its taxa
// are cloned too, and the result is keyed on the cloned taxa.
// Complexity: O(|namespace| + total cells).
func (m *Matrix) DeepCopy() *Matrix {
	ns, mapping := m.ns.Clone()
	memo := newCopyMemo()
	memo.taxa = mapping

	return m.cloneOnto(ns, memo, "DeepCopy")
}

// ScopedCopy deep-copies sequences, subsets and annotations, and keys the
// result on target. Every taxon of m is matched by exact label in target and
// created there when missing. A nil target, or m's own namespace, keeps taxon
// identity: the copy then shares m's namespace.
//
// Two sequences landing on one target taxon (source taxa sharing a label)
// fail with ErrMultipleSequences before anything is copied; taxa already
// created in target stay.
func (m *Matrix) ScopedCopy(target *taxon.Namespace) (*Matrix, error) {
	if target == nil {
		target = m.ns
	}
	memo := newCopyMemo()
	memo.taxa = taxon.ByLabel(m.ns, target, true)
	if err := m.checkRekey(memo.taxa); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "ScopedCopy"),
			"give the source taxa distinct labels or relabel them before migrating")
	}

	return m.cloneOnto(target, memo, "ScopedCopy"), nil
}

// checkRekey reports the first taxon that two sequences of m resolve onto
// through mapping.
func (m *Matrix) checkRekey(mapping taxon.Mapping) error {
	seen := make(map[*taxon.Taxon]*taxon.Taxon, len(m.seqs))
	for _, it := range m.allItems() {
		t := mapping.Resolve(it.Taxon)
		if prev, dup := seen[t]; dup {
			return errors.Wrapf(ErrMultipleSequences, "taxa %s and %s both map to %s", prev, it.Taxon, t)
		}
		seen[t] = it.Taxon
	}

	return nil
}

// NewFrom builds a matrix of src's data type by cloning src. It fails like
// ScopedCopy when two source taxa resolve onto one target taxon.
//
// Options:
//   - WithNamespace: target namespace (default src.Namespace()); taxa are
//     matched or created there by label.
//   - WithLabel: overrides the source label.
//   - WithLogger: replaces the source logger.
//   - WithDefaultAlphabet: nominates a default alphabet on the result.
func NewFrom(src *Matrix, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, errors.Wrap(ErrNilMatrix, "NewFrom")
	}
	o := gatherOptions(opts)
	out, err := src.ScopedCopy(o.namespace)
	if err != nil {
		return nil, errors.Wrap(err, "NewFrom")
	}
	if o.labelSet {
		out.label = o.label
	}
	if o.logger != nil {
		out.log = o.logger
	}
	if o.alphabet != nil {
		out.SetDefaultAlphabet(o.alphabet)
	}

	return out, nil
}
