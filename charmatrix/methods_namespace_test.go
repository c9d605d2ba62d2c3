// SPDX-License-Identifier: MIT

package charmatrix_test

import (
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/taxon"
	"github.com/stretchr/testify/require"
)

func TestReconstructNamespace_UnifyByLabel(t *testing.T) {
	src := newNamespace(LabelT1, LabelT2)
	m := mustDNA(t, src, map[string]string{LabelT1: "AC", LabelT2: "GT"})
	dst := newNamespace(LabelT2)
	existing := mustTaxon(t, dst, LabelT2)

	m.SetNamespace(dst)
	require.Empty(t, m.Taxa(), "keys still point at the old taxa")

	mapping := make(taxon.Mapping)
	require.NoError(t, m.ReconstructNamespace(true, false, mapping))
	require.Equal(t, []string{LabelT2, LabelT1}, dst.Labels())
	require.Len(t, m.Taxa(), 2)
	s, ok := m.Lookup(existing)
	require.True(t, ok)
	require.Equal(t, "GT", s.String())
	require.Same(t, existing, mapping[mustTaxon(t, src, LabelT2)])
}

func TestReconstructNamespace_Collision(t *testing.T) {
	src := taxon.NewNamespace(taxon.WithCaseSensitive(true), taxon.WithTaxa("a", "A"))
	m := mustDNA(t, src, map[string]string{"a": "AC", "A": "GT"}, charmatrix.WithCaseSensitiveLabels(true))
	require.Equal(t, 2, m.Len())

	m.SetNamespace(taxon.NewNamespace())
	err := m.ReconstructNamespace(true, false, nil)
	require.ErrorIs(t, err, charmatrix.ErrMultipleSequences)
	require.Equal(t, 2, m.Len(), "sequence map unchanged on failure")
}

func TestReconstructNamespace_NoUnify(t *testing.T) {
	ns := newNamespace(LabelT1)
	m := mustDNA(t, ns, map[string]string{LabelT1: "AC"})
	t1 := mustTaxon(t, ns, LabelT1)

	// members stay put when not unifying
	require.NoError(t, m.ReconstructNamespace(false, false, nil))
	_, ok := m.Lookup(t1)
	require.True(t, ok)

	dst := taxon.NewNamespace()
	chosen := taxon.New("chosen")
	m.SetNamespace(dst)
	require.NoError(t, m.ReconstructNamespace(false, false, taxon.Mapping{t1: chosen}))
	require.True(t, dst.Has(chosen))
	_, ok = m.Lookup(chosen)
	require.True(t, ok)
}

func TestUpdateNamespace(t *testing.T) {
	ns := newNamespace(LabelT1, LabelT2)
	m := mustDNA(t, ns, map[string]string{LabelT1: "AC", LabelT2: "GT"})
	dst := taxon.NewNamespace()
	m.SetNamespace(dst)

	m.UpdateNamespace()
	require.Equal(t, 2, dst.Len())
	require.Len(t, m.Taxa(), 2)
	require.True(t, dst.Has(mustTaxon(t, ns, LabelT1)))
}
