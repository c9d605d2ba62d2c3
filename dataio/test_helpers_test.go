// SPDX-License-Identifier: MIT

package dataio_test

import (
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
	"github.com/stretchr/testify/require"
)

func dnaMatrix(t testing.TB, ns *taxon.Namespace, rows map[string]string, opts ...charmatrix.Option) *charmatrix.Matrix {
	t.Helper()
	opts = append([]charmatrix.Option{charmatrix.WithNamespace(ns)}, opts...)
	m, err := charmatrix.FromDict(charmatrix.DNA, rows, opts...)
	require.NoError(t, err)

	return m
}

func symbolsOf(t testing.TB, m *charmatrix.Matrix, label string) string {
	t.Helper()
	tx, ok := m.Namespace().FindTaxon(label, true)
	require.True(t, ok, "taxon %q", label)
	s, ok := m.Lookup(tx)
	require.True(t, ok, "sequence %q", label)

	return s.String()
}

func mustStandard(t testing.TB, symbols string) *statealphabet.Alphabet {
	t.Helper()
	a, err := statealphabet.NewStandard(symbols)
	require.NoError(t, err)

	return a
}
