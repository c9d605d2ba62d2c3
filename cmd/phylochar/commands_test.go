// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/dataio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCmd_FASTAToYAML(t *testing.T) {
	out, err := execute(t, fastaCOX1, "convert", "--to", "yaml", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "data_type: dna")

	m, err := charmatrix.ParseFromStream(strings.NewReader(out), dataio.SchemaYAML, charmatrix.DNA)
	require.NoError(t, err)
	s, err := m.Get(charmatrix.ByLabel("t2"))
	require.NoError(t, err)
	assert.Equal(t, "TCGA", s.String())
}

func TestConvertCmd_OutputFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "cox1.fasta", fastaCOX1)
	dst := filepath.Join(dir, "cox1.cbor")

	out, err := execute(t, "", "convert", "--to", "cbor", "-o", dst, in)
	require.NoError(t, err)
	assert.Empty(t, out)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	m, err := charmatrix.ParseFromStream(f, dataio.SchemaCBOR, charmatrix.DNA)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestDescribeCmd(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "cox1.fasta", fastaCOX1)
	b := writeFile(t, dir, "ragged.fasta", fastaRagged)

	out, err := execute(t, "", "describe", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "Sequences")
	assert.Contains(t, out, a)
	assert.Contains(t, out, b)
	assert.Contains(t, out, "DnaCharacterMatrix")

	out, err = execute(t, "", "describe", "--depth", "2", a)
	require.NoError(t, err)
	assert.Contains(t, out, "2 Sequences")
	assert.Contains(t, out, "[Taxon Set]")
	assert.Contains(t, out, "t2 : 4 characters")

	_, err = execute(t, "", "describe", filepath.Join(dir, "missing.fasta"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConcatCmd(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "cox1.fasta", fastaCOX1)
	b := writeFile(t, dir, "rbcL.fasta", fastaRBCL)

	out, err := execute(t, "", "concat", "--to", "yaml", "--label", "combined", a, b)
	require.NoError(t, err)

	m, err := charmatrix.ParseFromStream(strings.NewReader(out), dataio.SchemaYAML, charmatrix.DNA)
	require.NoError(t, err)
	assert.Equal(t, "combined", m.Label())
	s, err := m.Get(charmatrix.ByLabel("t2"))
	require.NoError(t, err)
	assert.Equal(t, "TCGAGG", s.String())
	sub, err := m.Subset("rbcL")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, sub.Indices())

	c := writeFile(t, dir, "short.fasta", ">t1\nA\n")
	_, err = execute(t, "", "concat", a, c)
	require.ErrorIs(t, err, charmatrix.ErrShape)
}

func TestExportCmd(t *testing.T) {
	out, err := execute(t, fastaCOX1, "export", "--columns", "0,2", "-")
	require.NoError(t, err)
	assert.Equal(t, ">t1\nAG\n>t2\nTG\n", out)

	_, err = execute(t, fastaCOX1, "export", "-")
	require.ErrorIs(t, err, errNoSelection)

	_, err = execute(t, fastaCOX1, "export", "--columns", "0", "--subset", "x", "-")
	require.ErrorIs(t, err, errBothSelections)

	_, err = execute(t, fastaCOX1, "export", "--columns", "9", "-")
	require.ErrorIs(t, err, charmatrix.ErrIndexOutOfRange)

	_, err = execute(t, fastaCOX1, "export", "--subset", "x", "-")
	require.ErrorIs(t, err, charmatrix.ErrSubsetNotFound)
}

func TestExportCmd_Subset(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "cox1.fasta", fastaCOX1)
	b := writeFile(t, dir, "rbcL.fasta", fastaRBCL)
	combined := filepath.Join(dir, "combined.yaml")
	_, err := execute(t, "", "concat", "--to", "yaml", "-o", combined, a, b)
	require.NoError(t, err)

	out, err := execute(t, "", "export", "-s", "yaml", "--to", "fasta", "--subset", "rbcL", combined)
	require.NoError(t, err)
	assert.Equal(t, ">t1\nGA\n>t2\nGG\n", out)
}

func TestPadCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"gap", nil, ">t1\nACGT\n>t2\nAC--\n"},
		{"prepend", []string{"--fill", "N", "--prepend"}, ">t1\nACGT\n>t2\nNNAC\n"},
		{"size", []string{"--size", "5"}, ">t1\nACGT-\n>t2\nAC---\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(append([]string{"pad"}, tt.args...), "-")
			out, err := execute(t, fastaRagged, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPadCmd_Continuous(t *testing.T) {
	out, err := execute(t, ">a\n1 2\n>b\n3\n", "pad", "-t", "continuous", "--fill", "0.5", "-")
	require.NoError(t, err)
	assert.Equal(t, ">a\n1 2\n>b\n3 0.5\n", out)

	_, err = execute(t, ">a\n1 2\n", "pad", "-t", "continuous", "--fill", "x", "-")
	require.ErrorIs(t, err, errBadFill)
}

func TestPadCmd_BadSymbol(t *testing.T) {
	_, err := execute(t, fastaRagged, "pad", "--fill", "Z", "-")
	require.ErrorIs(t, err, errBadFill)
}

func TestPadCmd_StandardAlphabet(t *testing.T) {
	out, err := execute(t, ">a\n01\n>b\n2\n", "pad", "-t", "standard", "--alphabet", "012", "--fill", "?", "-")
	require.NoError(t, err)
	assert.Equal(t, ">a\n01\n>b\n2?\n", out)
}
