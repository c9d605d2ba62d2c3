// SPDX-License-Identifier: MIT

package charmatrix_test

import (
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/stretchr/testify/require"
)

func TestSequence_EditAndRender(t *testing.T) {
	a, c, g := dnaState(t, "A"), dnaState(t, "C"), dnaState(t, "G")
	s := charmatrix.NewSequence(charmatrix.StateCell(a), charmatrix.StateCell(g))
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.Insert(1, charmatrix.StateCell(c)))
	require.Equal(t, "ACG", s.String())
	require.NoError(t, s.Insert(3, charmatrix.StateCell(a)))
	require.Equal(t, "ACGA", s.String())
	require.Equal(t, "A C G A", s.SymbolString(" "))

	require.NoError(t, s.Delete(0))
	require.Equal(t, []string{"C", "G", "A"}, s.Symbols())

	cell, err := s.At(1)
	require.NoError(t, err)
	require.Same(t, g, cell.State)
}

func TestSequence_IndexErrors(t *testing.T) {
	s := charmatrix.NewSequence()
	_, err := s.At(0)
	require.ErrorIs(t, err, charmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Set(-1, charmatrix.ValueCell(1)), charmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Delete(0), charmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Insert(1, charmatrix.ValueCell(1)), charmatrix.ErrIndexOutOfRange)
	require.NoError(t, s.Insert(0, charmatrix.ValueCell(1)))
}

func TestSequence_ValuesIsACopy(t *testing.T) {
	s := charmatrix.NewSequence(charmatrix.ValueCell(1.5), charmatrix.ValueCell(2))
	vals := s.Values()
	vals[0] = charmatrix.ValueCell(9)
	first, _ := s.At(0)
	require.Equal(t, 1.5, first.Value)
	require.Equal(t, "1.5 2", s.SymbolString(" "))
}

func TestSequence_ExtendWithItself(t *testing.T) {
	s := charmatrix.NewSequence(charmatrix.ValueCell(1), charmatrix.ValueCell(2))
	s.Extend(s)
	require.Equal(t, "1 2 1 2", s.SymbolString(" "))
}

func TestSequence_CloneIsIndependent(t *testing.T) {
	a := dnaState(t, "A")
	s := charmatrix.NewSequence(charmatrix.StateCell(a))
	_, err := s.Annotations().AddNew("note", "x")
	require.NoError(t, err)

	c := s.Clone()
	require.NotSame(t, s, c)
	require.NotSame(t, s.Annotations(), c.Annotations())
	require.Equal(t, []string{"x"}, c.Annotations().Values("note"))

	c.Append(charmatrix.StateCell(a))
	require.Equal(t, 1, s.Len())
	cell, _ := c.At(0)
	require.Same(t, a, cell.State, "states are shared, never cloned")
}
