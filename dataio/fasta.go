// SPDX-License-Identifier: MIT
//
// File: fasta.go
// Role: FASTA reader and writer.
// Format:
//   - A record starts with ">" followed by the taxon label (whole line, trimmed).
//   - Discrete data: following lines are concatenated with whitespace removed,
//     one symbol per rune.
//   - Continuous data: following lines hold whitespace-separated numbers.
//   - Blank lines and lines starting with ";" are ignored.

package dataio

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/statealphabet"
	"go.uber.org/zap"
)

const maxFASTALine = 64 << 20

// ReadFASTA reads one matrix of req.DataType. An empty stream yields no
// matrices.
func ReadFASTA(r io.Reader, req charmatrix.ReadRequest) ([]*charmatrix.Matrix, error) {
	discrete := req.DataType != charmatrix.Continuous
	var (
		entries []charmatrix.Entry
		seen    = make(map[string]int)
		label   string
		body    strings.Builder
		open    bool
	)
	flush := func() {
		if open {
			entries = append(entries, charmatrix.Entry{Label: label, Values: body.String()})
		}
		body.Reset()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxFASTALine)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			label = strings.TrimSpace(line[1:])
			if label == "" {
				return nil, errors.Wrapf(ErrMalformed, "fasta line %d: empty label", n)
			}
			if prev, dup := seen[label]; dup {
				return nil, errors.Wrapf(ErrMalformed, "fasta line %d: label %q already used on line %d", n, label, prev)
			}
			seen[label] = n
			open = true
		case !open:
			return nil, errors.Wrapf(ErrMalformed, "fasta line %d: data before the first header", n)
		case discrete:
			body.WriteString(strings.Map(dropSpace, line))
		default:
			body.WriteString(line)
			body.WriteByte(' ')
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "fasta")
	}
	flush()
	if len(entries) == 0 {
		return nil, nil
	}

	a, err := standardAlphabet(req.DataType, req.Options[OptionAlphabet], "")
	if err != nil {
		return nil, err
	}
	m, err := newMatrix(req.DataType, req, optionString(req, OptionLabel), a)
	if err != nil {
		return nil, err
	}
	if err := m.Populate(entries, true); err != nil {
		err = errors.Wrap(err, "fasta")
		if _, given := req.Options[OptionAlphabet]; !given && req.DataType == charmatrix.Standard &&
			errors.Is(err, charmatrix.ErrSymbolNotFound) {
			err = errors.WithHintf(err, "standard data defaults to the symbols %q; set the %q schema option to declare others",
				statealphabet.DefaultStandardSymbols, OptionAlphabet)
		}

		return nil, err
	}
	req.Logger.Debug("read fasta",
		zap.String(charmatrix.FieldDataType, string(req.DataType)),
		zap.Int(charmatrix.FieldTaxa, m.Len()),
		zap.Int(charmatrix.FieldColumns, m.MaxSequenceSize()))

	return []*charmatrix.Matrix{m}, nil
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}

	return r
}

// FASTAWriter writes one record per sequence in namespace order.
// Wrap > 0 breaks discrete sequences every Wrap symbols.
type FASTAWriter struct {
	Wrap int
}

// WriteMatrix implements charmatrix.Writer.
func (fw FASTAWriter) WriteMatrix(w io.Writer, m *charmatrix.Matrix) error {
	bw := bufio.NewWriter(w)
	for _, it := range m.Items() {
		bw.WriteString(">")
		bw.WriteString(it.Taxon.Label())
		bw.WriteString("\n")
		if !m.Discrete() {
			bw.WriteString(it.Sequence.SymbolString(" "))
			bw.WriteString("\n")
			continue
		}
		text := it.Sequence.String()
		if fw.Wrap <= 0 {
			bw.WriteString(text)
			bw.WriteString("\n")
			continue
		}
		for text != "" {
			cut, n := 0, 0
			for cut < len(text) && n < fw.Wrap {
				_, size := utf8.DecodeRuneInString(text[cut:])
				cut += size
				n++
			}
			bw.WriteString(text[:cut])
			bw.WriteString("\n")
			text = text[cut:]
		}
	}

	return errors.Wrap(bw.Flush(), "fasta")
}
