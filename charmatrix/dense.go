// SPDX-License-Identifier: MIT

package charmatrix

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/taxon"
	"gonum.org/v1/gonum/mat"
)

// ContinuousDense copies a continuous matrix into a gonum dense matrix with
// one row per sequence, in namespace order. The returned taxa label the rows.
//
// Errors:
//   - ErrNotContinuous: m is discrete.
//   - ErrNoData: m has no sequences or no columns.
//   - ErrShape: sequences differ in length.
func (m *Matrix) ContinuousDense() (*mat.Dense, []*taxon.Taxon, error) {
	if m.v.discrete {
		return nil, nil, errors.Wrapf(ErrNotContinuous, "ContinuousDense on %s", m.v.name)
	}
	items := m.Items()
	cols := m.SequenceSize()
	if len(items) == 0 || cols == 0 {
		return nil, nil, errors.Wrapf(ErrNoData, "ContinuousDense on %q", m.label)
	}
	data := make([]float64, 0, len(items)*cols)
	taxa := make([]*taxon.Taxon, len(items))
	for i, it := range items {
		if it.Sequence.Len() != cols {
			return nil, nil, errors.Wrapf(ErrShape, "row %d (%s) has %d columns, expected %d", i, it.Taxon, it.Sequence.Len(), cols)
		}
		for _, c := range it.Sequence.cells {
			data = append(data, c.Value)
		}
		taxa[i] = it.Taxon
	}

	return mat.NewDense(len(items), cols, data), taxa, nil
}
