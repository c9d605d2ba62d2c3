// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <path>",
		Short: "Rewrite a matrix in the --to schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readMatrix(cmd, args[0])
			if err != nil {
				return err
			}

			return writeMatrix(cmd, m)
		},
	}
}
