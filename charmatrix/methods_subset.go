// SPDX-License-Identifier: MIT
//
// File: methods_subset.go
// Role: character subsets and column export.
// Policy:
//   - Subset labels are unique under case folding.
//   - Export validates every requested column against MaxSequenceSize before
//     anything is cloned; the source matrix is never modified.

package charmatrix

import (
	"sort"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// AddSubset registers s under its label.
func (m *Matrix) AddSubset(s *Subset) error {
	if s == nil {
		return errors.Wrap(ErrSubsetNotFound, "AddSubset(nil)")
	}
	if m.subsets.has(s.label) {
		return errors.Wrapf(ErrDuplicateSubset, "label %q", s.label)
	}
	m.subsets.put(s)

	return nil
}

// NewSubset creates and registers a subset.
func (m *Matrix) NewSubset(label string, indices ...int) (*Subset, error) {
	s := NewSubset(label, indices...)
	if err := m.AddSubset(s); err != nil {
		return nil, err
	}

	return s, nil
}

// Subset returns the subset registered under label (case-insensitive).
func (m *Matrix) Subset(label string) (*Subset, error) {
	s, ok := m.subsets.get(label)
	if !ok {
		return nil, errors.Wrapf(ErrSubsetNotFound, "label %q", label)
	}

	return s, nil
}

// Subsets returns the subsets in registration order.
func (m *Matrix) Subsets() []*Subset { return m.subsets.list() }

// RemoveSubset unregisters the subset labeled label.
func (m *Matrix) RemoveSubset(label string) error {
	if !m.subsets.remove(label) {
		return errors.Wrapf(ErrSubsetNotFound, "label %q", label)
	}

	return nil
}

// ExportIndices returns a copy of m (same namespace) holding only the
// requested columns, in ascending column order. Duplicate indices collapse.
//
// The copy also narrows its column types and re-numbers its subsets onto the
// surviving columns. Column types are positional: the i-th type describes
// column i, and kept columns past the last type get none.
//
// Errors:
//   - ErrIndexOutOfRange: an index outside [0, MaxSequenceSize()).
//
// Complexity: O(total cells + |indices| log |indices|).
func (m *Matrix) ExportIndices(indices []int) (*Matrix, error) {
	width := m.MaxSequenceSize()
	for _, i := range indices {
		if i < 0 || i >= width {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "export column %d of %d", i, width)
		}
	}
	keep := make(map[int]int, len(indices))
	for _, i := range indices {
		keep[i] = 0
	}
	kept := make([]int, 0, len(keep))
	for i := range keep {
		kept = append(kept, i)
	}
	sort.Ints(kept)
	for pos, i := range kept {
		keep[i] = pos
	}
	isKept := func(col int) bool {
		_, ok := keep[col]

		return ok
	}

	out, err := m.ScopedCopy(nil)
	if err != nil {
		return nil, err
	}
	done := make(map[*Sequence]struct{}, len(out.seqs))
	for _, s := range out.seqs {
		if _, ok := done[s]; ok {
			continue
		}
		s.retain(isKept)
		done[s] = struct{}{}
	}
	if len(out.characterTypes) > 0 {
		types := make([]*CharacterType, 0, len(kept))
		for _, i := range kept {
			if i < len(out.characterTypes) {
				types = append(types, out.characterTypes[i])
			}
		}
		out.characterTypes = types
	}
	for _, sub := range out.subsets.list() {
		renumbered := make(map[int]struct{}, len(sub.indices))
		for i := range sub.indices {
			if pos, ok := keep[i]; ok {
				renumbered[pos] = struct{}{}
			}
		}
		sub.indices = renumbered
	}
	m.log.Debug("exported columns",
		zap.String(FieldOperation, "ExportIndices"),
		zap.String(FieldMatrix, m.label),
		zap.Int(FieldColumns, len(kept)))

	return out, nil
}

// ExportSubset exports the columns of s.
func (m *Matrix) ExportSubset(s *Subset) (*Matrix, error) {
	if s == nil {
		return nil, errors.Wrap(ErrSubsetNotFound, "ExportSubset(nil)")
	}

	return m.ExportIndices(s.Indices())
}

// ExportSubsetByLabel resolves a registered subset and exports its columns.
func (m *Matrix) ExportSubsetByLabel(label string) (*Matrix, error) {
	s, err := m.Subset(label)
	if err != nil {
		return nil, err
	}

	return m.ExportSubset(s)
}
