// SPDX-License-Identifier: MIT

package charmatrix_test

import (
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/taxon"
	"github.com/stretchr/testify/require"
)

func TestMatrixType(t *testing.T) {
	dt, err := charmatrix.MatrixType(" DNA ")
	require.NoError(t, err)
	require.Equal(t, charmatrix.DNA, dt)
	require.Equal(t, "DnaCharacterMatrix", dt.TypeName())

	_, err = charmatrix.MatrixType("morse")
	require.ErrorIs(t, err, charmatrix.ErrUnknownDataType)
	require.Contains(t, err.Error(), "continuous, dna, infinite")
	require.Equal(t, "", charmatrix.DataType("morse").TypeName())
}

func TestDataTypes_Sorted(t *testing.T) {
	require.Equal(t, []charmatrix.DataType{
		charmatrix.Continuous, charmatrix.DNA, charmatrix.InfiniteSites, charmatrix.Nucleotide,
		charmatrix.Protein, charmatrix.RestrictionSites, charmatrix.RNA, charmatrix.Standard,
	}, charmatrix.DataTypes())
}

func TestNew(t *testing.T) {
	ns := taxon.NewNamespace()
	m, err := charmatrix.New("protein", charmatrix.WithNamespace(ns), charmatrix.WithLabel("p"))
	require.NoError(t, err)
	require.Equal(t, "ProteinCharacterMatrix", m.TypeName())
	require.Equal(t, "p", m.Label())
	require.Same(t, ns, m.Namespace())

	_, err = charmatrix.New("")
	require.ErrorIs(t, err, charmatrix.ErrUnknownDataType)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { charmatrix.WithNamespace(nil) })
	require.Panics(t, func() { charmatrix.WithLogger(nil) })
	require.Panics(t, func() { charmatrix.WithDefaultAlphabet(nil) })
	require.Panics(t, func() { charmatrix.WithMatrixOffset(-1) })
}
