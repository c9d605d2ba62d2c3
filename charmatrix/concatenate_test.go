// SPDX-License-Identifier: MIT

package charmatrix_test

import (
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/stretchr/testify/require"
)

// 4) concatenation joins columns and records one subset per source.
func TestConcatenate_TwoLoci(t *testing.T) {
	ns := newNamespace(LabelT1, LabelT2)
	a := mustDNA(t, ns, map[string]string{LabelT1: SeqTCCAA, LabelT2: SeqTGCAA})
	b := mustDNA(t, ns, map[string]string{LabelT1: SeqGG, LabelT2: SeqGA})

	c, err := charmatrix.Concatenate([]*charmatrix.Matrix{a, b})
	require.NoError(t, err)
	require.Same(t, ns, c.Namespace())
	require.Equal(t, "TCCAAGG", seqOf(t, c, LabelT1))
	require.Equal(t, "TGCAAGA", seqOf(t, c, LabelT2))

	subsets := c.Subsets()
	require.Len(t, subsets, 2)
	require.Equal(t, "locus001", subsets[0].Label())
	require.Equal(t, []int{0, 1, 2, 3, 4}, subsets[0].Indices())
	require.Equal(t, "locus002", subsets[1].Label())
	require.Equal(t, []int{5, 6}, subsets[1].Indices())

	// sources are untouched and not aliased
	require.Equal(t, SeqTCCAA, seqOf(t, a, LabelT1))
	s, _ := c.Lookup(mustTaxon(t, ns, LabelT1))
	orig, _ := a.Lookup(mustTaxon(t, ns, LabelT1))
	require.NotSame(t, orig, s)
}

// 5) unequal sequence counts fail before anything is built.
func TestConcatenate_UnequalCounts(t *testing.T) {
	ns := newNamespace(LabelT1, LabelT2)
	a := mustDNA(t, ns, map[string]string{LabelT1: SeqTCCAA, LabelT2: SeqTGCAA})
	b := mustDNA(t, ns, map[string]string{LabelT1: SeqGG})

	c, err := charmatrix.Concatenate([]*charmatrix.Matrix{a, b})
	require.ErrorIs(t, err, charmatrix.ErrShape)
	require.Nil(t, c)
}

func TestConcatenate_Validation(t *testing.T) {
	ns := newNamespace(LabelT1, LabelT2)
	good := mustDNA(t, ns, map[string]string{LabelT1: SeqGG, LabelT2: SeqGA})

	_, err := charmatrix.Concatenate(nil)
	require.ErrorIs(t, err, charmatrix.ErrNoData)

	_, err = charmatrix.Concatenate([]*charmatrix.Matrix{good, nil})
	require.ErrorIs(t, err, charmatrix.ErrNilMatrix)

	ragged := mustDNA(t, ns, map[string]string{LabelT1: "A", LabelT2: "AC"})
	_, err = charmatrix.Concatenate([]*charmatrix.Matrix{good, ragged})
	require.ErrorIs(t, err, charmatrix.ErrShape)

	foreign := mustDNA(t, newNamespace(LabelT1, LabelT2), map[string]string{LabelT1: SeqGG, LabelT2: SeqGA})
	_, err = charmatrix.Concatenate([]*charmatrix.Matrix{good, foreign})
	require.ErrorIs(t, err, charmatrix.ErrNamespaceMismatch)

	protein, err := charmatrix.FromDict(charmatrix.Protein, map[string]string{LabelT1: "MK", LabelT2: "MR"},
		charmatrix.WithNamespace(ns))
	require.NoError(t, err)
	_, err = charmatrix.Concatenate([]*charmatrix.Matrix{good, protein})
	require.ErrorIs(t, err, charmatrix.ErrDataTypeMismatch)
}

func TestConcatenate_LabelCollisions(t *testing.T) {
	ns := newNamespace(LabelT1)
	a := mustDNA(t, ns, map[string]string{LabelT1: "A"}, charmatrix.WithLabel("cox1"))
	b := mustDNA(t, ns, map[string]string{LabelT1: "C"}, charmatrix.WithLabel("COX1"))
	c := mustDNA(t, ns, map[string]string{LabelT1: "G"}, charmatrix.WithLabel("cox1"))

	out, err := charmatrix.Concatenate([]*charmatrix.Matrix{a, b, c}, charmatrix.WithLabel("combined"))
	require.NoError(t, err)
	require.Equal(t, "combined", out.Label())
	var labels []string
	for _, s := range out.Subsets() {
		labels = append(labels, s.Label())
	}
	require.Equal(t, "cox1", labels[0])
	require.Equal(t, "COX1_002", labels[1])
	require.Equal(t, "cox1_003", labels[2])
}
