// SPDX-License-Identifier: MIT

package annotation

import "github.com/cockroachdb/errors"

var (
	// ErrNilAnnotation is returned when a nil *Annotation is added to a Set.
	ErrNilAnnotation = errors.New("annotation: nil annotation")

	// ErrEmptyName is returned when an annotation is created without a name.
	ErrEmptyName = errors.New("annotation: empty name")
)
