// SPDX-License-Identifier: MIT

package annotation_test

import (
	"testing"

	"github.com/katalvlaran/phylochar/annotation"
	"github.com/stretchr/testify/require"
)

func TestSet_AddFindValues(t *testing.T) {
	s := annotation.NewSet()
	_, err := s.AddNew("source", "GenBank")
	require.NoError(t, err)
	_, err = s.AddNew("source", "EMBL")
	require.NoError(t, err)

	a, ok := s.Find("source")
	require.True(t, ok)
	require.Equal(t, "GenBank", a.Value)
	require.Equal(t, annotation.DefaultDataType, a.DataType)
	require.Equal(t, []string{"GenBank", "EMBL"}, s.Values("source"))

	_, err = s.AddNew("", "x")
	require.ErrorIs(t, err, annotation.ErrEmptyName)
	require.ErrorIs(t, s.Add(nil), annotation.ErrNilAnnotation)
}

func TestSet_CloneIsIndependent(t *testing.T) {
	s := annotation.NewSet()
	a, err := s.AddNew("gene", "cox1")
	require.NoError(t, err)
	_, err = a.Annotations().AddNew("evidence", "inferred")
	require.NoError(t, err)

	c := s.Clone()
	require.Equal(t, 1, c.Len())
	ca, _ := c.Find("gene")
	require.NotSame(t, a, ca)
	require.Equal(t, "cox1", ca.Value)

	// mutate the clone, original unchanged
	ca.Value = "cytb"
	nested, _ := ca.Annotations().Find("evidence")
	nested.Value = "observed"
	require.Equal(t, "cox1", a.Value)
	orig, _ := a.Annotations().Find("evidence")
	require.Equal(t, "inferred", orig.Value)
}

func TestSet_RemoveAndNil(t *testing.T) {
	var nilSet *annotation.Set
	require.Equal(t, 0, nilSet.Len())
	require.Equal(t, 0, nilSet.Clone().Len())

	s := annotation.NewSet()
	_, _ = s.AddNew("a", "1")
	_, _ = s.AddNew("b", "2")
	_, _ = s.AddNew("a", "3")
	require.Equal(t, 2, s.Remove("a"))
	require.Equal(t, 1, s.Len())
	s.Clear()
	require.Equal(t, 0, s.Len())
}
