// SPDX-License-Identifier: MIT
// Package charmatrix_test contains fixtures shared by the charmatrix tests.

package charmatrix_test

import (
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
	"github.com/stretchr/testify/require"
)

// Common taxon labels.
const (
	LabelT0 = "t0"
	LabelT1 = "t1"
	LabelT2 = "t2"
	LabelT3 = "t3"
)

// Common sequences.
const (
	SeqTCCAA = "TCCAA"
	SeqTGCAA = "TGCAA"
	SeqGG    = "GG"
	SeqGA    = "GA"
)

// newNamespace returns a namespace pre-populated with labels, in order.
func newNamespace(labels ...string) *taxon.Namespace {
	return taxon.NewNamespace(taxon.WithTaxa(labels...))
}

// mustDNA builds a DNA matrix over ns from label → symbols rows.
func mustDNA(t testing.TB, ns *taxon.Namespace, rows map[string]string, opts ...charmatrix.Option) *charmatrix.Matrix {
	t.Helper()
	opts = append([]charmatrix.Option{charmatrix.WithNamespace(ns)}, opts...)
	m, err := charmatrix.FromDict(charmatrix.DNA, rows, opts...)
	require.NoError(t, err)

	return m
}

// mustTaxon fetches a namespace taxon by label.
func mustTaxon(t testing.TB, ns *taxon.Namespace, label string) *taxon.Taxon {
	t.Helper()
	tx, ok := ns.GetTaxon(label)
	require.True(t, ok, "taxon %q", label)

	return tx
}

// seqOf renders the sequence keyed by the namespace taxon labeled label,
// without auto-creating it.
func seqOf(t testing.TB, m *charmatrix.Matrix, label string) string {
	t.Helper()
	s, ok := m.Lookup(mustTaxon(t, m.Namespace(), label))
	require.True(t, ok, "no sequence for %q", label)

	return s.String()
}

// dnaState fetches a built-in DNA state.
func dnaState(t testing.TB, symbol string) *statealphabet.State {
	t.Helper()
	st, err := statealphabet.DNA.Lookup(symbol)
	require.NoError(t, err)

	return st
}

// gapCell is the DNA gap as a cell.
func gapCell(t testing.TB) charmatrix.Cell {
	t.Helper()

	return charmatrix.StateCell(dnaState(t, statealphabet.GapSymbol))
}

// mustStandardAlphabet builds a standard alphabet over symbols.
func mustStandardAlphabet(t testing.TB, symbols string) *statealphabet.Alphabet {
	t.Helper()
	a, err := statealphabet.NewStandard(symbols)
	require.NoError(t, err)

	return a
}
