// SPDX-License-Identifier: MIT

package charmatrix

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// DataTypes returns every recognized data-type tag in ascending order.
func DataTypes() []DataType {
	out := make([]DataType, 0, len(variants))
	for dt := range variants {
		out = append(out, dt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// MatrixType maps a tag ("dna", "Protein", ...) to its data type.
// Tags are matched case-insensitively after trimming.
func MatrixType(tag string) (DataType, error) {
	dt := DataType(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := variants[dt]; ok {
		return dt, nil
	}
	valid := make([]string, 0, len(variants))
	for _, d := range DataTypes() {
		valid = append(valid, string(d))
	}

	return "", errors.Wrapf(ErrUnknownDataType, "%q (valid: %s)", tag, strings.Join(valid, ", "))
}

// New creates an empty matrix of the variant named by tag.
func New(tag string, opts ...Option) (*Matrix, error) {
	dt, err := MatrixType(tag)
	if err != nil {
		return nil, err
	}

	return newMatrix(variants[dt], gatherOptions(opts)), nil
}

// TypeName returns the variant name of dt, e.g. "ProteinCharacterMatrix".
func (d DataType) TypeName() string {
	if v, ok := variants[d]; ok {
		return v.name
	}

	return ""
}
