// SPDX-License-Identifier: MIT
//
// File: concatenate.go
// Role: column-wise concatenation of complete, aligned matrices.
// Policy:
//   - Every source is validated before the result is allocated, so a failure
//     never yields a partially built matrix.
//   - One subset per source records its column range in the result.

package charmatrix

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Concatenate joins matrices column-wise, taxon by taxon, in the given order.
//
// Requirements (checked for every source, in order):
//   - same data type as the first source (ErrDataTypeMismatch),
//   - the identical *taxon.Namespace (ErrNamespaceMismatch),
//   - a sequence for every namespace taxon (ErrShape),
//   - the same sequence count as the first source (ErrShape),
//   - all sequences of equal length (ErrShape).
//
// The result shares the sources' namespace and receives deep copies of their
// cells. The subset of source i is labeled with the source label, or
// "locus%03d" (1-based) when the source is unlabeled; a label already in use
// gets a "_%03d" suffix starting at 2.
//
// Options: WithLabel and WithLogger apply to the result.
func Concatenate(matrices []*Matrix, opts ...Option) (*Matrix, error) {
	if len(matrices) == 0 {
		return nil, errors.Wrap(ErrNoData, "Concatenate: no matrices")
	}
	if err := checkConcatenable(matrices); err != nil {
		return nil, err
	}
	first := matrices[0]
	o := gatherOptions(opts)
	o.namespace = first.ns
	if o.logger == nil {
		o.logger = first.log
	}
	out := newMatrix(first.v, o)

	start := 0
	for i, src := range matrices {
		width := src.SequenceSize()
		if err := out.ExtendMatrix(src); err != nil {
			return nil, errors.Wrapf(err, "Concatenate: matrix %d", i+1)
		}
		indices := make([]int, width)
		for c := range indices {
			indices[c] = start + c
		}
		if _, err := out.NewSubset(out.freeSubsetLabel(src.label, i), indices...); err != nil {
			return nil, errors.Wrapf(err, "Concatenate: matrix %d", i+1)
		}
		start += width
	}
	out.log.Debug("concatenated matrices",
		zap.String(FieldOperation, "Concatenate"),
		zap.String(FieldDataType, string(out.v.dataType)),
		zap.Int(FieldSourceIndex, len(matrices)),
		zap.Int(FieldColumns, start),
		zap.Int(FieldTaxa, out.Len()))

	return out, nil
}

func checkConcatenable(matrices []*Matrix) error {
	first := matrices[0]
	if first == nil {
		return errors.Wrap(ErrNilMatrix, "Concatenate: matrix 1")
	}
	count := first.Len()
	for i, m := range matrices {
		n := i + 1
		switch {
		case m == nil:
			return errors.Wrapf(ErrNilMatrix, "Concatenate: matrix %d", n)
		case m.v != first.v:
			return errors.Wrapf(ErrDataTypeMismatch, "Concatenate: matrix %d is %s, expected %s", n, m.v.dataType, first.v.dataType)
		case m.ns != first.ns:
			return errors.Wrapf(ErrNamespaceMismatch, "Concatenate: matrix %d", n)
		case len(m.Items()) != m.ns.Len() || m.Len() != m.ns.Len():
			return errors.Wrapf(ErrShape, "Concatenate: matrix %d has %d sequences for %d taxa", n, m.Len(), m.ns.Len())
		case m.Len() != count:
			return errors.Wrapf(ErrShape, "Concatenate: matrix %d has %d sequences, expected %d", n, m.Len(), count)
		}
		width := m.SequenceSize()
		for _, it := range m.Items() {
			if it.Sequence.Len() != width {
				return errors.Wrapf(ErrShape, "Concatenate: matrix %d: sequence of %s has %d characters, expected %d",
					n, it.Taxon, it.Sequence.Len(), width)
			}
		}
	}

	return nil
}

// freeSubsetLabel picks the provenance label of source i (0-based).
func (m *Matrix) freeSubsetLabel(label string, i int) string {
	if label == "" {
		label = fmt.Sprintf("locus%03d", i+1)
	}
	candidate := label
	for k := 2; m.subsets.has(candidate); k++ {
		candidate = fmt.Sprintf("%s_%03d", label, k)
	}

	return candidate
}
