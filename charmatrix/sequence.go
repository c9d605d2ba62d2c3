// SPDX-License-Identifier: MIT

package charmatrix

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/annotation"
	"github.com/katalvlaran/phylochar/statealphabet"
)

// Cell is one column entry of a sequence: a state reference for discrete
// data, a raw value for continuous data. States are shared alphabet
// singletons; copying a Cell never copies its State.
type Cell struct {
	State *statealphabet.State
	Value float64
}

// StateCell returns a discrete cell.
func StateCell(s *statealphabet.State) Cell { return Cell{State: s} }

// ValueCell returns a continuous cell.
func ValueCell(v float64) Cell { return Cell{Value: v} }

// IsState reports whether the cell holds a state reference.
func (c Cell) IsState() bool { return c.State != nil }

// Symbol renders the cell: the state symbol, or the shortest float form.
func (c Cell) Symbol() string {
	if c.State != nil {
		return c.State.Symbol
	}

	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

// Sequence is an ordered, growable, annotatable list of cells.
// It has no taxon or alphabet awareness; its taxon association exists only
// through a Matrix.
type Sequence struct {
	cells       []Cell
	annotations *annotation.Set
}

// NewSequence returns a sequence holding a copy of cells.
func NewSequence(cells ...Cell) *Sequence {
	s := &Sequence{annotations: annotation.NewSet()}
	if len(cells) > 0 {
		s.cells = make([]Cell, len(cells))
		copy(s.cells, cells)
	}

	return s
}

// Len returns the number of cells.
func (s *Sequence) Len() int { return len(s.cells) }

// Annotations returns the sequence metadata bag.
func (s *Sequence) Annotations() *annotation.Set { return s.annotations }

func (s *Sequence) checkIndex(method string, i, limit int) error {
	if i < 0 || i >= limit {
		return errors.Wrapf(ErrIndexOutOfRange, "Sequence.%s(%d) with length %d", method, i, len(s.cells))
	}

	return nil
}

// At returns the cell at column i.
func (s *Sequence) At(i int) (Cell, error) {
	if err := s.checkIndex("At", i, len(s.cells)); err != nil {
		return Cell{}, err
	}

	return s.cells[i], nil
}

// Set overwrites the cell at column i.
func (s *Sequence) Set(i int, c Cell) error {
	if err := s.checkIndex("Set", i, len(s.cells)); err != nil {
		return err
	}
	s.cells[i] = c

	return nil
}

// Append adds cells at the end.
func (s *Sequence) Append(cells ...Cell) { s.cells = append(s.cells, cells...) }

// Insert places c before column i; i == Len() appends.
func (s *Sequence) Insert(i int, c Cell) error {
	if err := s.checkIndex("Insert", i, len(s.cells)+1); err != nil {
		return err
	}
	s.cells = append(s.cells, Cell{})
	copy(s.cells[i+1:], s.cells[i:])
	s.cells[i] = c

	return nil
}

// Delete removes column i.
func (s *Sequence) Delete(i int) error {
	if err := s.checkIndex("Delete", i, len(s.cells)); err != nil {
		return err
	}
	s.cells = append(s.cells[:i], s.cells[i+1:]...)

	return nil
}

// Extend appends every cell of other. Extending a sequence with itself
// doubles it.
func (s *Sequence) Extend(other *Sequence) {
	s.cells = append(s.cells, other.cells...)
}

// Values returns a copy of the cells; later edits to s are not reflected.
func (s *Sequence) Values() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)

	return out
}

// Symbols returns the symbol of every cell.
func (s *Sequence) Symbols() []string {
	out := make([]string, len(s.cells))
	for i, c := range s.cells {
		out[i] = c.Symbol()
	}

	return out
}

// SymbolString joins the symbols with sep.
func (s *Sequence) SymbolString(sep string) string {
	return strings.Join(s.Symbols(), sep)
}

// String renders the symbols with no separator.
func (s *Sequence) String() string { return s.SymbolString("") }

// Clone returns an independent copy: new cell storage and cloned annotations.
func (s *Sequence) Clone() *Sequence {
	return s.clone(newCopyMemo())
}

// clone deep-copies s once per memo, so a sequence reachable from several
// places resolves to one copy.
func (s *Sequence) clone(memo *copyMemo) *Sequence {
	if c, ok := memo.sequences[s]; ok {
		return c
	}
	c := NewSequence(s.cells...)
	c.annotations = s.annotations.Clone()
	memo.sequences[s] = c

	return c
}

// retain keeps the columns for which keep returns true, in order.
func (s *Sequence) retain(keep func(col int) bool) {
	kept := s.cells[:0]
	for i, c := range s.cells {
		if keep(i) {
			kept = append(kept, c)
		}
	}
	s.cells = kept
}

// firstForeignState reports the first cell whose state is not accepted.
func (s *Sequence) firstForeignState(accept func(*statealphabet.State) bool) (int, bool) {
	for i, c := range s.cells {
		if c.State != nil && !accept(c.State) {
			return i, true
		}
	}

	return -1, false
}
