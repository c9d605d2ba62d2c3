// SPDX-License-Identifier: MIT
//
// File: methods_alphabet.go
// Role: state-alphabet registration, default alphabet, symbol remapping.
// Policy:
//   - The alphabet list only grows, except through RemapToAlphabetBySymbol(purge=true).
//   - The default alphabet is always a member of the list.

package charmatrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/statealphabet"
	"go.uber.org/zap"
)

// Alphabets returns the registered alphabets in registration order.
func (m *Matrix) Alphabets() []*statealphabet.Alphabet {
	out := make([]*statealphabet.Alphabet, len(m.alphabets))
	copy(out, m.alphabets)

	return out
}

// HasAlphabet reports registration of a (identity).
func (m *Matrix) HasAlphabet(a *statealphabet.Alphabet) bool {
	for _, x := range m.alphabets {
		if x == a {
			return true
		}
	}

	return false
}

// AddAlphabet registers a (idempotent). Continuous matrices refuse alphabets.
func (m *Matrix) AddAlphabet(a *statealphabet.Alphabet) error {
	if !m.v.discrete {
		return errors.Wrapf(ErrNotDiscrete, "AddAlphabet on %s", m.v.name)
	}
	if a != nil && !m.HasAlphabet(a) {
		m.alphabets = append(m.alphabets, a)
	}

	return nil
}

// DefaultAlphabet returns the nominated default alphabet, or the only
// registered one.
//
// Errors:
//   - ErrNoDefaultAlphabet: nothing registered.
//   - ErrAmbiguousDefaultAlphabet: several registered and none nominated.
func (m *Matrix) DefaultAlphabet() (*statealphabet.Alphabet, error) {
	switch {
	case m.defaultAlphabet != nil:
		return m.defaultAlphabet, nil
	case len(m.alphabets) == 1:
		return m.alphabets[0], nil
	case len(m.alphabets) > 1:
		return nil, errors.Wrapf(ErrAmbiguousDefaultAlphabet, "%d alphabets on %s", len(m.alphabets), m.v.name)
	default:
		return nil, errors.Wrapf(ErrNoDefaultAlphabet, "%s", m.v.name)
	}
}

// SetDefaultAlphabet nominates a, registering it first when needed.
// Ignored on continuous matrices.
func (m *Matrix) SetDefaultAlphabet(a *statealphabet.Alphabet) {
	if !m.v.discrete || a == nil {
		return
	}
	if !m.HasAlphabet(a) {
		m.alphabets = append(m.alphabets, a)
	}
	m.defaultAlphabet = a
}

// acceptsState reports whether st belongs to a registered alphabet.
func (m *Matrix) acceptsState(st *statealphabet.State) bool {
	return m.HasAlphabet(st.Alphabet())
}

// checkStates enforces that fixed-alphabet matrices only hold states of their
// registered alphabets.
func (m *Matrix) checkStates(s *Sequence) error {
	if !m.v.fixedAlphabet() {
		return nil
	}
	if i, bad := s.firstForeignState(m.acceptsState); bad {
		st := s.cells[i].State
		return errors.Wrapf(ErrForeignState, "column %d: state %q of alphabet %q", i, st.Symbol, st.Alphabet().Label())
	}

	return nil
}

// checkCell applies the checkStates rule to a single cell.
func (m *Matrix) checkCell(c Cell) error {
	if !m.v.fixedAlphabet() || c.State == nil || m.acceptsState(c.State) {
		return nil
	}

	return errors.Wrapf(ErrForeignState, "state %q of alphabet %q", c.State.Symbol, c.State.Alphabet().Label())
}

// adoptAlphabets registers every alphabet of other not yet registered here.
func (m *Matrix) adoptAlphabets(other *Matrix) {
	if !m.v.discrete {
		return
	}
	for _, a := range other.alphabets {
		if !m.HasAlphabet(a) {
			m.alphabets = append(m.alphabets, a)
		}
	}
}

// AppendSymbols appends states looked up by symbol in the default alphabet
// to the sequence of the addressed taxon, creating the sequence if needed.
// Nothing is appended unless every symbol resolves.
func (m *Matrix) AppendSymbols(k Key, symbols ...string) error {
	if !m.v.discrete {
		return errors.Wrapf(ErrNotDiscrete, "AppendSymbols on %s", m.v.name)
	}
	a, err := m.DefaultAlphabet()
	if err != nil {
		return err
	}
	cells := make([]Cell, 0, len(symbols))
	for _, sym := range symbols {
		st, ok := a.State(sym)
		if !ok {
			return errors.Wrapf(ErrSymbolNotFound, "symbol %q in alphabet %q", sym, a.Label())
		}
		cells = append(cells, StateCell(st))
	}
	s, err := m.Get(k)
	if err != nil {
		return err
	}
	s.Append(cells...)

	return nil
}

// RemapToAlphabetBySymbol re-points every cell state (and every column type)
// at the state of a that carries the same symbol.
//
// Implementation:
//   - Stage 1: resolve the replacement of every cell; any unmatched symbol
//     fails with ErrSymbolNotFound and leaves the matrix untouched.
//   - Stage 2: commit the new cells; replace every column type with a copy
//     bound to a. Copies sharing the old column types keep their binding.
//   - Stage 3: register a; when purge is set, a becomes the only alphabet and
//     the default.
//
// Complexity: O(total cells).
func (m *Matrix) RemapToAlphabetBySymbol(a *statealphabet.Alphabet, purge bool) error {
	if !m.v.discrete {
		return errors.Wrapf(ErrNotDiscrete, "RemapToAlphabetBySymbol on %s", m.v.name)
	}
	if a == nil {
		return errors.Wrap(ErrNoDefaultAlphabet, "RemapToAlphabetBySymbol(nil)")
	}
	remapped := make(map[*Sequence][]Cell, len(m.seqs))
	for _, it := range m.allItems() {
		cells := it.Sequence.Values()
		for i, c := range cells {
			if c.State == nil {
				continue
			}
			st, ok := a.State(c.State.Symbol)
			if !ok {
				return errors.WithHintf(
					errors.Wrapf(ErrSymbolNotFound, "taxon %s column %d: symbol %q not in alphabet %q",
						it.Taxon, i, c.State.Symbol, a.Label()),
					"the target alphabet must define every symbol used by the matrix")
			}
			cells[i] = StateCell(st)
		}
		remapped[it.Sequence] = cells
	}
	for s, cells := range remapped {
		s.cells = cells
	}
	for i, ct := range m.characterTypes {
		m.characterTypes[i] = ct.rebound(a)
	}
	if purge {
		m.alphabets = []*statealphabet.Alphabet{a}
		m.defaultAlphabet = a
	} else if !m.HasAlphabet(a) {
		m.alphabets = append(m.alphabets, a)
	}
	m.log.Debug("remapped states by symbol",
		zap.String(FieldMatrix, m.label),
		zap.String(FieldAlphabet, a.Label()),
		zap.Int(FieldTaxa, len(m.seqs)),
		zap.Bool("purge", purge))

	return nil
}

// RemapToDefaultAlphabetBySymbol remaps onto DefaultAlphabet().
func (m *Matrix) RemapToDefaultAlphabetBySymbol(purge bool) error {
	a, err := m.DefaultAlphabet()
	if err != nil {
		return err
	}

	return m.RemapToAlphabetBySymbol(a, purge)
}
