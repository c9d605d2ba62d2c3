// SPDX-License-Identifier: MIT

package dataio

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/statealphabet"
)

// Schema names registered by this package.
const (
	SchemaFASTA = "fasta"
	SchemaYAML  = "yaml"
	SchemaCBOR  = "cbor"
)

// Reader option keys.
const (
	OptionLabel    = "label"
	OptionAlphabet = "alphabet"
)

// DefaultFASTAWrap is the line width of registered FASTA output (0: no wrap).
const DefaultFASTAWrap = 0

func init() {
	charmatrix.RegisterReader(SchemaFASTA, charmatrix.ReaderFunc(ReadFASTA))
	charmatrix.RegisterWriter(SchemaFASTA, FASTAWriter{Wrap: DefaultFASTAWrap})
	charmatrix.RegisterReader(SchemaYAML, charmatrix.ReaderFunc(ReadYAML))
	charmatrix.RegisterWriter(SchemaYAML, charmatrix.WriterFunc(WriteYAML))
	charmatrix.RegisterReader(SchemaCBOR, charmatrix.ReaderFunc(ReadCBOR))
	charmatrix.RegisterWriter(SchemaCBOR, charmatrix.WriterFunc(WriteCBOR))
}

func optionString(req charmatrix.ReadRequest, key string) string {
	s, _ := req.Options[key].(string)

	return s
}

// standardAlphabet resolves OptionAlphabet (or symbols) for standard data.
// Returns nil for other data types.
func standardAlphabet(dt charmatrix.DataType, opt any, symbols string) (*statealphabet.Alphabet, error) {
	if dt != charmatrix.Standard {
		return nil, nil
	}
	switch v := opt.(type) {
	case *statealphabet.Alphabet:
		return v, nil
	case string:
		if v != "" {
			symbols = v
		}
	case nil:
	default:
		return nil, errors.Wrapf(ErrMalformed, "option %q: unsupported %T", OptionAlphabet, opt)
	}

	return statealphabet.NewStandard(symbols)
}

// newMatrix creates the empty matrix a reader fills.
func newMatrix(dt charmatrix.DataType, req charmatrix.ReadRequest, label string, a *statealphabet.Alphabet) (*charmatrix.Matrix, error) {
	opts := []charmatrix.Option{
		charmatrix.WithNamespace(req.Namespace),
		charmatrix.WithLogger(req.Logger),
		charmatrix.WithLabel(label),
	}
	if a != nil {
		opts = append(opts, charmatrix.WithDefaultAlphabet(a))
	}

	return charmatrix.New(string(dt), opts...)
}
