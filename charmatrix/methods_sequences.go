// SPDX-License-Identifier: MIT
//
// File: methods_sequences.go
// Role: taxon → sequence CRUD, ordered iteration and size metrics.
// Determinism:
//   - Taxa()/Sequences()/Items() follow namespace order, filtered to taxa with a sequence.
//   - SequenceSize() takes the first such taxon, so it is stable across runs.

package charmatrix

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/taxon"
)

// Item pairs a taxon with its sequence.
type Item struct {
	Taxon    *taxon.Taxon
	Sequence *Sequence
}

// Resolve maps a key to a taxon of the namespace.
// ByTaxon keys are returned unchanged without a membership check.
func (m *Matrix) Resolve(k Key) (*taxon.Taxon, error) {
	if k == nil {
		return nil, errors.Wrap(taxon.ErrNilTaxon, "Resolve(nil)")
	}

	return k.resolve(m.ns)
}

// Get returns the sequence of the taxon addressed by k.
//
// Behavior highlights:
//   - A namespace taxon with no sequence gets a new empty one (the matrix is mutated).
//   - A taxon outside the namespace fails with ErrTaxonNotInNamespace.
//
// Complexity: O(1) for ByTaxon/ByIndex, O(n) for ByLabel.
func (m *Matrix) Get(k Key) (*Sequence, error) {
	t, err := m.Resolve(k)
	if err != nil {
		return nil, err
	}
	if s, ok := m.seqs[t]; ok {
		return s, nil
	}

	return m.NewSequence(t)
}

// Set assigns s to the taxon addressed by k, replacing any existing sequence.
// The matrix takes s as is; it is not copied.
func (m *Matrix) Set(k Key, s *Sequence) error {
	t, err := m.Resolve(k)
	if err != nil {
		return err
	}
	if !m.ns.Has(t) {
		return errors.Wrapf(ErrTaxonNotInNamespace, "Set(%s)", t)
	}
	if s == nil {
		s = NewSequence()
	}
	if err := m.checkStates(s); err != nil {
		return errors.Wrapf(err, "Set(%s)", t)
	}
	m.seqs[t] = s

	return nil
}

// SetValues coerces raw through the variant coercer and assigns the result.
// Nothing is mutated when resolution, membership or coercion fails.
func (m *Matrix) SetValues(k Key, raw any) error {
	t, err := m.Resolve(k)
	if err != nil {
		return err
	}
	if !m.ns.Has(t) {
		return errors.Wrapf(ErrTaxonNotInNamespace, "SetValues(%s)", t)
	}
	s, err := m.Coerce(raw)
	if err != nil {
		return errors.Wrapf(err, "SetValues(%s)", t)
	}
	if err := m.checkStates(s); err != nil {
		return errors.Wrapf(err, "SetValues(%s)", t)
	}
	m.seqs[t] = s

	return nil
}

// NewSequence creates the sequence of t from cells.
// Fails with ErrDuplicateSequence if t already has one and with
// ErrTaxonNotInNamespace if t is not a namespace member.
func (m *Matrix) NewSequence(t *taxon.Taxon, cells ...Cell) (*Sequence, error) {
	if t == nil {
		return nil, errors.Wrap(taxon.ErrNilTaxon, "NewSequence")
	}
	if _, ok := m.seqs[t]; ok {
		return nil, errors.Wrapf(ErrDuplicateSequence, "NewSequence(%s)", t)
	}
	if !m.ns.Has(t) {
		return nil, errors.Wrapf(ErrTaxonNotInNamespace, "NewSequence(%s)", t)
	}
	s := NewSequence(cells...)
	if err := m.checkStates(s); err != nil {
		return nil, errors.Wrapf(err, "NewSequence(%s)", t)
	}
	m.seqs[t] = s

	return s, nil
}

// Contains reports whether the addressed taxon has a sequence.
// Unresolvable keys report false.
func (m *Matrix) Contains(k Key) bool {
	t, err := m.Resolve(k)
	if err != nil {
		return false
	}
	_, ok := m.seqs[t]

	return ok
}

// Delete removes the sequence of the addressed taxon.
// The namespace is not modified.
func (m *Matrix) Delete(k Key) error {
	t, err := m.Resolve(k)
	if err != nil {
		return err
	}
	if _, ok := m.seqs[t]; !ok {
		return errors.Wrapf(ErrTaxonNotFound, "Delete(%s): no sequence", t)
	}
	delete(m.seqs, t)

	return nil
}

// Clear removes every sequence. The namespace is not modified.
func (m *Matrix) Clear() {
	m.seqs = make(map[*taxon.Taxon]*Sequence)
}

// Len returns the number of taxa with a sequence (not the namespace size).
func (m *Matrix) Len() int { return len(m.seqs) }

// Taxa returns the taxa with a sequence, in namespace order.
// Complexity: O(|namespace|).
func (m *Matrix) Taxa() []*taxon.Taxon {
	out := make([]*taxon.Taxon, 0, len(m.seqs))
	for _, t := range m.ns.Taxa() {
		if _, ok := m.seqs[t]; ok {
			out = append(out, t)
		}
	}

	return out
}

// Sequences returns the sequences in namespace order.
func (m *Matrix) Sequences() []*Sequence {
	taxa := m.Taxa()
	out := make([]*Sequence, len(taxa))
	for i, t := range taxa {
		out[i] = m.seqs[t]
	}

	return out
}

// Items returns (taxon, sequence) pairs in namespace order.
func (m *Matrix) Items() []Item {
	taxa := m.Taxa()
	out := make([]Item, len(taxa))
	for i, t := range taxa {
		out[i] = Item{Taxon: t, Sequence: m.seqs[t]}
	}

	return out
}

// Lookup returns the sequence of t without auto-creating one.
func (m *Matrix) Lookup(t *taxon.Taxon) (*Sequence, bool) {
	s, ok := m.seqs[t]

	return s, ok
}

// SequenceSize returns the length of the first sequence in namespace order
// (any sequence if none is keyed by a namespace taxon), or 0 when empty.
// No alignment check is made: sequences may differ in length.
func (m *Matrix) SequenceSize() int {
	if len(m.seqs) == 0 {
		return 0
	}
	for _, t := range m.ns.Taxa() {
		if s, ok := m.seqs[t]; ok {
			return s.Len()
		}
	}
	for _, s := range m.seqs {
		return s.Len()
	}

	return 0
}

// MaxSequenceSize returns the length of the longest sequence.
func (m *Matrix) MaxSequenceSize() int {
	maxLen := 0
	for _, s := range m.seqs {
		if s.Len() > maxLen {
			maxLen = s.Len()
		}
	}

	return maxLen
}

// allItems is Items plus any sequence keyed by a taxon outside the namespace
// (possible only between SetNamespace and ReconstructNamespace), appended last
// in label order.
func (m *Matrix) allItems() []Item {
	out := m.Items()
	if len(out) == len(m.seqs) {
		return out
	}
	var stray []Item
	for t, s := range m.seqs {
		if !m.ns.Has(t) {
			stray = append(stray, Item{Taxon: t, Sequence: s})
		}
	}
	sort.Slice(stray, func(i, j int) bool {
		if stray[i].Taxon.Label() != stray[j].Taxon.Label() {
			return stray[i].Taxon.Label() < stray[j].Taxon.Label()
		}

		return stray[i].Taxon.OID() < stray[j].Taxon.OID()
	})

	return append(out, stray...)
}
