// SPDX-License-Identifier: MIT
//
// File: methods_bulk.go
// Role: padding and bulk merge operations between matrices of one namespace.
// Policy:
//   - Merges require the identical *taxon.Namespace and the same data type.
//   - Source sequences are copied unless ShareSequences() is given.
//   - A merge is applied taxon by taxon; there is no rollback.
//
// Merge table (taxon only in source / taxon in both):
//
//	AddSequences      copy in   / ignored
//	ReplaceSequences  ignored   / overwrite with copy
//	UpdateSequences   copy in   / overwrite with copy
//	ExtendSequences   ignored   / append cells in place
//	ExtendMatrix      copy in   / append cells in place

package charmatrix

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Fill pads every sequence shorter than the target size with value and
// returns the size used. The target is MaxSequenceSize() unless FillSize is
// given; FillPrepend pads at the front.
//
// A fixed-alphabet matrix only accepts a value whose state belongs to a
// registered alphabet; otherwise Fill fails with ErrForeignState and pads
// nothing.
// Complexity: O(total padding).
func (m *Matrix) Fill(value Cell, opts ...FillOption) (int, error) {
	if err := m.checkCell(value); err != nil {
		return 0, errors.Wrap(err, "Fill")
	}
	f := fillOptions{size: -1}
	for _, opt := range opts {
		opt(&f)
	}
	size := f.size
	if size < 0 {
		size = m.MaxSequenceSize()
	}
	for _, s := range m.Sequences() {
		n := size - s.Len()
		if n <= 0 {
			continue
		}
		pad := make([]Cell, n)
		for i := range pad {
			pad[i] = value
		}
		if f.prepend {
			s.cells = append(pad, s.cells...)
		} else {
			s.cells = append(s.cells, pad...)
		}
	}

	return size, nil
}

// FillTaxa gives every namespace taxon lacking a sequence an empty one.
func (m *Matrix) FillTaxa() {
	for _, t := range m.ns.Taxa() {
		if _, ok := m.seqs[t]; !ok {
			m.seqs[t] = NewSequence()
		}
	}
}

// Pack is FillTaxa followed by Fill. A rejected value leaves the matrix
// untouched.
func (m *Matrix) Pack(value Cell, opts ...FillOption) (int, error) {
	if err := m.checkCell(value); err != nil {
		return 0, errors.Wrap(err, "Pack")
	}
	m.FillTaxa()

	return m.Fill(value, opts...)
}

// checkMergeable enforces invariant 4 and variant equality.
func (m *Matrix) checkMergeable(op string, other *Matrix) error {
	if other == nil {
		return errors.Wrap(ErrNilMatrix, op)
	}
	if other.ns != m.ns {
		return errors.WithHint(
			errors.Wrapf(ErrNamespaceMismatch, "%s: %q and %q", op, m.label, other.label),
			"use ScopedCopy or NewFrom(WithNamespace) to migrate a matrix onto a shared namespace")
	}
	if other.v != m.v {
		return errors.Wrapf(ErrDataTypeMismatch, "%s: %s into %s", op, other.v.dataType, m.v.dataType)
	}

	return nil
}

// merge walks the source sequence map in source namespace order and
// dispatches on whether the destination already holds the taxon.
func (m *Matrix) merge(op string, other *Matrix, opts []MergeOption, onlyInSource, inBoth func(mo mergeOptions, dst, src *Sequence) *Sequence) error {
	if err := m.checkMergeable(op, other); err != nil {
		return err
	}
	mo := gatherMergeOptions(opts)
	touched := 0
	for _, it := range other.allItems() {
		dst, exists := m.seqs[it.Taxon]
		var next *Sequence
		if exists {
			next = inBoth(mo, dst, it.Sequence)
		} else {
			next = onlyInSource(mo, nil, it.Sequence)
		}
		if next != nil {
			m.seqs[it.Taxon] = next
			touched++
		}
	}
	m.adoptAlphabets(other)
	m.log.Debug("merged sequences",
		zap.String(FieldOperation, op),
		zap.String(FieldMatrix, m.label),
		zap.String(FieldDataType, string(m.v.dataType)),
		zap.Int(FieldTaxa, touched))

	return nil
}

func copyIn(mo mergeOptions, _, src *Sequence) *Sequence {
	if mo.share {
		return src
	}

	return src.Clone()
}

func ignore(mergeOptions, *Sequence, *Sequence) *Sequence { return nil }

func extendInPlace(_ mergeOptions, dst, src *Sequence) *Sequence {
	dst.Extend(src)

	return dst
}

// AddSequences copies in sequences of taxa present only in other.
func (m *Matrix) AddSequences(other *Matrix, opts ...MergeOption) error {
	return m.merge("AddSequences", other, opts, copyIn, ignore)
}

// ReplaceSequences overwrites sequences of taxa present in both matrices.
func (m *Matrix) ReplaceSequences(other *Matrix, opts ...MergeOption) error {
	return m.merge("ReplaceSequences", other, opts, ignore, copyIn)
}

// UpdateSequences copies in or overwrites every sequence of other.
func (m *Matrix) UpdateSequences(other *Matrix, opts ...MergeOption) error {
	return m.merge("UpdateSequences", other, opts, copyIn, copyIn)
}

// ExtendSequences appends other's cells to sequences of taxa present in both.
func (m *Matrix) ExtendSequences(other *Matrix, opts ...MergeOption) error {
	return m.merge("ExtendSequences", other, opts, ignore, extendInPlace)
}

// ExtendMatrix appends other's cells for shared taxa and copies in the rest.
func (m *Matrix) ExtendMatrix(other *Matrix, opts ...MergeOption) error {
	return m.merge("ExtendMatrix", other, opts, copyIn, extendInPlace)
}
