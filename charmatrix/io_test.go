// SPDX-License-Identifier: MIT

package charmatrix_test

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/stretchr/testify/require"
)

const (
	schemaLines = "test-lines"
	schemaEmpty = "test-empty"
)

// linesReader reads "label symbols" lines into one DNA matrix and one
// protein matrix holding the same rows.
func linesReader(r io.Reader, req charmatrix.ReadRequest) ([]*charmatrix.Matrix, error) {
	rows := make(map[string]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 2 {
			rows[f[0]] = f[1]
		}
	}
	var out []*charmatrix.Matrix
	for _, dt := range []charmatrix.DataType{charmatrix.DNA, charmatrix.Protein} {
		label, _ := req.Options["label"].(string)
		m, err := charmatrix.FromDict(dt, rows,
			charmatrix.WithNamespace(req.Namespace), charmatrix.WithLogger(req.Logger), charmatrix.WithLabel(label))
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, sc.Err()
}

func init() {
	charmatrix.RegisterReader(schemaLines, charmatrix.ReaderFunc(linesReader))
	charmatrix.RegisterReader(schemaEmpty, charmatrix.ReaderFunc(
		func(io.Reader, charmatrix.ReadRequest) ([]*charmatrix.Matrix, error) { return nil, nil }))
	charmatrix.RegisterWriter(schemaLines, charmatrix.WriterFunc(func(w io.Writer, m *charmatrix.Matrix) error {
		for _, it := range m.Items() {
			if _, err := fmt.Fprintf(w, "%s %s\n", it.Taxon.Label(), it.Sequence); err != nil {
				return err
			}
		}

		return nil
	}))
}

const linesInput = "t1 ACGT\nt2 ACGA\n"

func TestParseFromStream(t *testing.T) {
	ns := newNamespace(LabelT2)
	m, err := charmatrix.ParseFromStream(strings.NewReader(linesInput), "TEST-LINES", charmatrix.DNA,
		charmatrix.WithNamespace(ns), charmatrix.WithSchemaOption("label", "parsed"))
	require.NoError(t, err)
	require.Equal(t, charmatrix.DNA, m.DataType())
	require.Equal(t, "parsed", m.Label())
	require.Same(t, ns, m.Namespace())
	require.Equal(t, []string{LabelT2, LabelT1}, ns.Labels())

	p, err := charmatrix.ParseFromStream(strings.NewReader(linesInput), schemaLines, charmatrix.Protein,
		charmatrix.WithMatrixOffset(1), charmatrix.WithLabel("second"))
	require.NoError(t, err)
	require.Equal(t, "second", p.Label())
	require.Equal(t, "ACGA", seqOf(t, p, LabelT2))
}

func TestParseFromStream_Errors(t *testing.T) {
	_, err := charmatrix.ParseFromStream(strings.NewReader(linesInput), "nexml", charmatrix.DNA)
	require.ErrorIs(t, err, charmatrix.ErrUnknownSchema)

	_, err = charmatrix.ParseFromStream(strings.NewReader(linesInput), schemaEmpty, charmatrix.DNA)
	require.ErrorIs(t, err, charmatrix.ErrNoData)

	_, err = charmatrix.ParseFromStream(strings.NewReader(linesInput), schemaLines, charmatrix.DNA,
		charmatrix.WithMatrixOffset(2))
	require.ErrorIs(t, err, charmatrix.ErrIndexOutOfRange)

	_, err = charmatrix.ParseFromStream(strings.NewReader(linesInput), schemaLines, charmatrix.DNA,
		charmatrix.WithMatrixOffset(1))
	require.ErrorIs(t, err, charmatrix.ErrDataTypeMismatch)

	_, err = charmatrix.ParseFromStream(strings.NewReader("t1 ACGZ\n"), schemaLines, charmatrix.DNA)
	require.ErrorIs(t, err, charmatrix.ErrSymbolNotFound)
}

func TestWrite(t *testing.T) {
	m := mustDNA(t, newNamespace(LabelT1, LabelT2), map[string]string{LabelT1: "AC", LabelT2: "GT"})
	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf, schemaLines))
	require.Equal(t, "t1 AC\nt2 GT\n", buf.String())

	require.ErrorIs(t, m.Write(&buf, "nexus"), charmatrix.ErrUnknownSchema)

	readers, writers := charmatrix.Schemas()
	require.Contains(t, readers, schemaLines)
	require.Contains(t, readers, schemaEmpty)
	require.Contains(t, writers, schemaLines)
}
