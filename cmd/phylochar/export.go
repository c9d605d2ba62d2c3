// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		columns []int
		subset  string
	)
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write only the selected columns of a matrix",
		Long: `Write only the selected columns of a matrix. Columns are 0-based and
given with --columns, or taken from a named character subset with --subset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(columns) == 0 && subset == "":
				return errors.WithHint(errNoSelection, "pass --columns or --subset")
			case len(columns) > 0 && subset != "":
				return errBothSelections
			}
			m, err := readMatrix(cmd, args[0])
			if err != nil {
				return err
			}
			var out *charmatrix.Matrix
			if subset != "" {
				out, err = m.ExportSubsetByLabel(subset)
			} else {
				out, err = m.ExportIndices(columns)
			}
			if err != nil {
				return err
			}

			return writeMatrix(cmd, out)
		},
	}
	cmd.Flags().IntSliceVarP(&columns, "columns", "c", nil, "0-based columns to keep (e.g. 0,2,5)")
	cmd.Flags().StringVar(&subset, "subset", "", "character subset to keep")

	return cmd
}
