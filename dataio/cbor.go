// SPDX-License-Identifier: MIT

package dataio

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/katalvlaran/phylochar/charmatrix"
)

// cborEncMode uses canonical encoding so equal matrices give equal bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("dataio: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// ReadCBOR decodes one CBOR document. An empty stream yields no matrices.
func ReadCBOR(r io.Reader, req charmatrix.ReadRequest) ([]*charmatrix.Matrix, error) {
	var doc document
	if err := cbor.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, errors.Mark(errors.Wrap(err, "cbor"), ErrMalformed)
	}

	return fromDocument(doc, req, SchemaCBOR)
}

// WriteCBOR encodes m as a single-matrix document.
func WriteCBOR(w io.Writer, m *charmatrix.Matrix) error {
	return errors.Wrap(cborEncMode.NewEncoder(w).Encode(document{Matrices: []matrixDoc{toDocument(m)}}), "cbor")
}
