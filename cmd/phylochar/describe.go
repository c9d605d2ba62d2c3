// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newDescribeCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "describe <paths...>",
		Short: "Summarize matrices as a table, or in detail with --depth",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]describeRow, 0, len(args))
			for _, path := range args {
				m, err := readMatrix(cmd, path)
				if err != nil {
					return err
				}
				if depth > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), m.Description(depth))
					continue
				}
				rows = append(rows, describeRow{path: path, m: m})
			}
			if len(rows) > 0 {
				fmt.Fprint(cmd.OutOrStdout(), renderDescribeTable(rows))
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "print Description(depth) instead of the table")

	return cmd
}

type describeRow struct {
	path string
	m    *charmatrix.Matrix
}

func renderDescribeTable(rows []describeRow) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Label", "Type", "Taxa", "Sequences", "Columns", "Subsets"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, r := range rows {
		table.Append([]string{
			r.path,
			r.m.Label(),
			r.m.TypeName(),
			strconv.Itoa(r.m.Namespace().Len()),
			strconv.Itoa(r.m.Len()),
			strconv.Itoa(r.m.MaxSequenceSize()),
			strconv.Itoa(len(r.m.Subsets())),
		})
	}
	table.Render()

	return buf.String()
}
