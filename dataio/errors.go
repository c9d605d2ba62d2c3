// SPDX-License-Identifier: MIT

package dataio

import "github.com/cockroachdb/errors"

var (
	// ErrMalformed is returned when a stream does not follow its schema.
	ErrMalformed = errors.New("dataio: malformed input")

	// ErrNoSources is returned when a multi-source operation gets no sources.
	ErrNoSources = errors.New("dataio: no sources")
)
