// SPDX-License-Identifier: MIT

package main

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPadCmd() *cobra.Command {
	var (
		fill    string
		size    int
		prepend bool
	)
	cmd := &cobra.Command{
		Use:   "pad <path>",
		Short: "Give every taxon a sequence and pad all sequences to one length",
		Long: `Give every taxon of the namespace a sequence, then pad every sequence
to --size (default: the longest sequence). Discrete data pads with --fill
looked up in the default alphabet (default: the gap); continuous data pads
with --fill parsed as a number (default: NaN).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			cell, err := fillCell(m, fill)
			if err != nil {
				return err
			}
			var opts []charmatrix.FillOption
			if size >= 0 {
				opts = append(opts, charmatrix.FillSize(size))
			}
			if prepend {
				opts = append(opts, charmatrix.FillPrepend())
			}
			used, err := m.Pack(cell, opts...)
			if err != nil {
				return err
			}
			logger.Info("padded", zap.String(charmatrix.FieldMatrix, m.Label()), zap.Int(charmatrix.FieldColumns, used))

			return writeMatrix(cmd, m)
		},
	}
	cmd.Flags().StringVar(&fill, "fill", "", "fill symbol or number")
	cmd.Flags().IntVar(&size, "size", -1, "target length (negative: longest sequence)")
	cmd.Flags().BoolVar(&prepend, "prepend", false, "pad at the front instead of the end")

	return cmd
}

// fillCell turns the --fill text into a cell valid for m.
func fillCell(m *charmatrix.Matrix, fill string) (charmatrix.Cell, error) {
	if !m.Discrete() {
		if fill == "" {
			return charmatrix.ValueCell(math.NaN()), nil
		}
		v, err := strconv.ParseFloat(fill, 64)
		if err != nil {
			return charmatrix.Cell{}, errors.Mark(errors.Wrapf(err, "fill %q", fill), errBadFill)
		}

		return charmatrix.ValueCell(v), nil
	}
	a, err := m.DefaultAlphabet()
	if err != nil {
		return charmatrix.Cell{}, err
	}
	if fill == "" {
		gap, ok := a.Gap()
		if !ok {
			return charmatrix.Cell{}, errors.WithHintf(errBadFill, "alphabet %s has no gap; pass --fill", a.Label())
		}

		return charmatrix.StateCell(gap), nil
	}
	st, ok := a.State(fill)
	if !ok {
		return charmatrix.Cell{}, errors.Wrapf(errBadFill, "symbol %q not in %s", fill, a.Label())
	}

	return charmatrix.StateCell(st), nil
}
