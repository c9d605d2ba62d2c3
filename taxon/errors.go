// SPDX-License-Identifier: MIT

package taxon

import "github.com/cockroachdb/errors"

var (
	// ErrNilTaxon is returned when a nil *Taxon is passed where a taxon is required.
	ErrNilTaxon = errors.New("taxon: nil taxon")

	// ErrTaxonNotFound is returned when a label or taxon is not in the namespace.
	ErrTaxonNotFound = errors.New("taxon: taxon not found")

	// ErrIndexOutOfRange is returned by At for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("taxon: index out of range")
)
