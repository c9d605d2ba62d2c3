// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/phylochar/charmatrix"
	"github.com/katalvlaran/phylochar/dataio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const rootLongDescription = `phylochar reads phylogenetic character matrices (DNA, RNA, protein,
standard morphological or continuous data) and describes, converts,
pads, exports and concatenates them.

Input and output schemas: fasta, yaml, cbor. A path of "-" reads stdin.
Settings may also come from ./phylochar.yaml or PHYLOCHAR_* variables.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "phylochar",
		Short:         "Phylogenetic character matrix tool",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = configureLogger(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	configureRootFlags(cmd)
	cmd.AddCommand(
		newDescribeCmd(),
		newConvertCmd(),
		newConcatCmd(),
		newExportCmd(),
		newPadCmd(),
	)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(schemaFlagName, "s", defaultSchema, "input schema (fasta, yaml, cbor)")
	bindFlagToConfig(flags.Lookup(schemaFlagName), schemaKey)

	flags.StringP(dataTypeFlagName, "t", defaultDataType, "data type of the input matrices")
	bindFlagToConfig(flags.Lookup(dataTypeFlagName), dataTypeKey)

	flags.StringP(outputFlagName, "o", "", "output file (default stdout)")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputKey)

	flags.String(toFlagName, "", "output schema (default: the input schema)")
	bindFlagToConfig(flags.Lookup(toFlagName), toKey)

	flags.String(alphabetFlagName, "", "fundamental symbols of standard data")
	bindFlagToConfig(flags.Lookup(alphabetFlagName), alphabetKey)

	flags.String(logFileFlagName, defaultLogFilename, "rotating log file")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(errors.Newf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// dataType resolves the data_type setting.
func dataType() (charmatrix.DataType, error) {
	return charmatrix.MatrixType(viper.GetString(dataTypeKey))
}

// readOptions are the charmatrix options every reading command passes on.
func readOptions() []charmatrix.Option {
	opts := []charmatrix.Option{charmatrix.WithLogger(logger)}
	if a := viper.GetString(alphabetKey); a != "" {
		opts = append(opts, charmatrix.WithSchemaOption(dataio.OptionAlphabet, a))
	}

	return opts
}

// readMatrix parses the first matrix of path ("-" for stdin).
func readMatrix(cmd *cobra.Command, path string) (*charmatrix.Matrix, error) {
	dt, err := dataType()
	if err != nil {
		return nil, err
	}
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		defer f.Close()
		r = f
	}
	m, err := charmatrix.ParseFromStream(r, viper.GetString(schemaKey), dt, readOptions()...)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	logger.Info("read matrix",
		zap.String("path", path),
		zap.String(charmatrix.FieldMatrix, m.Label()),
		zap.Int(charmatrix.FieldTaxa, m.Len()))

	return m, nil
}

// outputSchema is --to, falling back to the input schema.
func outputSchema() string {
	if s := viper.GetString(toKey); s != "" {
		return s
	}

	return viper.GetString(schemaKey)
}

// writeMatrix writes m to --output (stdout when unset or "-").
func writeMatrix(cmd *cobra.Command, m *charmatrix.Matrix) error {
	schema := outputSchema()
	path := viper.GetString(outputKey)
	if path == "" || path == "-" {
		return m.Write(cmd.OutOrStdout(), schema)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := m.Write(f, schema); err != nil {
		_ = f.Close()
		return err
	}
	logger.Info("wrote matrix",
		zap.String("path", path),
		zap.String(charmatrix.FieldSchema, schema),
		zap.Int(charmatrix.FieldColumns, m.MaxSequenceSize()))

	return errors.Wrapf(f.Close(), "close %s", path)
}
