// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/dataio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newConcatCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "concat <paths...>",
		Short: "Join aligned matrices column-wise, one subset per file",
		Long: `Join aligned matrices column-wise. Files are parsed in parallel and
matched by taxon label; every file must hold a sequence for every taxon.
Each file becomes a character subset named after it, which only the yaml
and cbor schemas preserve.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := dataType()
			if err != nil {
				return err
			}
			m, err := dataio.ConcatenatePaths(cmd.Context(), nil, args, viper.GetString(schemaKey), dt, readOptions()...)
			if err != nil {
				return err
			}
			if label != "" {
				m.SetLabel(label)
			}
			logger.Info("concatenated",
				zap.Int(charmatrix.FieldSourceIndex, len(args)),
				zap.Int(charmatrix.FieldColumns, m.MaxSequenceSize()))

			return writeMatrix(cmd, m)
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "", "label of the combined matrix")

	return cmd
}
