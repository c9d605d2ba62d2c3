// SPDX-License-Identifier: MIT

package dataio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/dataio"
	"github.com/katalvlaran/phylochar/statealphabet"
	"github.com/katalvlaran/phylochar/taxon"
	"github.com/stretchr/testify/require"
)

const fastaDNA = `; two taxa
>t1
ACGT
AC

>t2 sample
acg tac
`

func TestReadFASTA_DNA(t *testing.T) {
	ns := taxon.NewNamespace()
	m, err := charmatrix.ParseFromStream(strings.NewReader(fastaDNA), dataio.SchemaFASTA, charmatrix.DNA,
		charmatrix.WithNamespace(ns), charmatrix.WithSchemaOption(dataio.OptionLabel, "cox1"))
	require.NoError(t, err)
	require.Equal(t, "cox1", m.Label())
	require.Equal(t, []string{"t1", "t2 sample"}, ns.Labels())
	require.Equal(t, "ACGTAC", symbolsOf(t, m, "t1"))
	require.Equal(t, "ACGTAC", symbolsOf(t, m, "t2 sample"))
}

func TestReadFASTA_Continuous(t *testing.T) {
	in := ">a\n1 2\n3.5\n>b\n-1 0 1\n"
	m, err := charmatrix.ParseFromStream(strings.NewReader(in), dataio.SchemaFASTA, charmatrix.Continuous)
	require.NoError(t, err)
	s, err := m.Get(charmatrix.ByLabel("a"))
	require.NoError(t, err)
	require.Equal(t, "1 2 3.5", s.SymbolString(" "))
}

func TestReadFASTA_StandardAlphabet(t *testing.T) {
	in := ">a\n0120\n>b\n2?-1\n"
	m, err := charmatrix.ParseFromStream(strings.NewReader(in), dataio.SchemaFASTA, charmatrix.Standard,
		charmatrix.WithSchemaOption(dataio.OptionAlphabet, "012"))
	require.NoError(t, err)
	a, err := m.DefaultAlphabet()
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2", "-", "?"}, a.Symbols())
	require.Equal(t, "2?-1", symbolsOf(t, m, "b"))

	given, err := statealphabet.NewStandard("01")
	require.NoError(t, err)
	_, err = charmatrix.ParseFromStream(strings.NewReader(in), dataio.SchemaFASTA, charmatrix.Standard,
		charmatrix.WithSchemaOption(dataio.OptionAlphabet, given))
	require.ErrorIs(t, err, charmatrix.ErrSymbolNotFound)
}

func TestReadFASTA_StandardWithoutAlphabetHints(t *testing.T) {
	_, err := charmatrix.ParseFromStream(strings.NewReader(">a\nab\n"), dataio.SchemaFASTA, charmatrix.Standard)
	require.ErrorIs(t, err, charmatrix.ErrSymbolNotFound)
	hints := strings.Join(errors.GetAllHints(err), "\n")
	require.Contains(t, hints, dataio.OptionAlphabet)
	require.Contains(t, hints, statealphabet.DefaultStandardSymbols)

	m, err := charmatrix.ParseFromStream(strings.NewReader(">a\n0123456789\n"), dataio.SchemaFASTA, charmatrix.Standard)
	require.NoError(t, err)
	require.Equal(t, "0123456789", symbolsOf(t, m, "a"))
}

func TestReadFASTA_Malformed(t *testing.T) {
	cases := map[string]string{
		"data before header": "ACGT\n>t1\nAC\n",
		"empty label":        ">\nAC\n",
		"duplicate label":    ">t1\nAC\n>t1\nGT\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := charmatrix.ParseFromStream(strings.NewReader(in), dataio.SchemaFASTA, charmatrix.DNA)
			require.ErrorIs(t, err, dataio.ErrMalformed)
		})
	}

	_, err := charmatrix.ParseFromStream(strings.NewReader("\n; nothing\n"), dataio.SchemaFASTA, charmatrix.DNA)
	require.ErrorIs(t, err, charmatrix.ErrNoData)
}

func TestWriteFASTA(t *testing.T) {
	m := dnaMatrix(t, taxon.NewNamespace(), map[string]string{"t1": "ACGTAC", "t2": "AC"})
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, dataio.SchemaFASTA))
	require.Equal(t, ">t1\nACGTAC\n>t2\nAC\n", buf.String())

	buf.Reset()
	require.NoError(t, dataio.FASTAWriter{Wrap: 4}.WriteMatrix(&buf, m))
	require.Equal(t, ">t1\nACGT\nAC\n>t2\nAC\n", buf.String())

	c, err := charmatrix.FromDict(charmatrix.Continuous, map[string][]float64{"x": {0.5, 2}})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, c.Write(&buf, dataio.SchemaFASTA))
	require.Equal(t, ">x\n0.5 2\n", buf.String())
}
