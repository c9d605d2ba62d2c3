// SPDX-License-Identifier: MIT

package dataio

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"gopkg.in/yaml.v3"
)

// ReadYAML decodes a document holding a "matrices" list.
// An empty stream yields no matrices.
func ReadYAML(r io.Reader, req charmatrix.ReadRequest) ([]*charmatrix.Matrix, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errors.Mark(errors.Wrap(err, "yaml"), ErrMalformed)
	}

	return fromDocument(doc, req, SchemaYAML)
}

// WriteYAML encodes m as a single-matrix document.
func WriteYAML(w io.Writer, m *charmatrix.Matrix) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Matrices: []matrixDoc{toDocument(m)}}); err != nil {
		return errors.Wrap(err, "yaml")
	}

	return errors.Wrap(enc.Close(), "yaml")
}
