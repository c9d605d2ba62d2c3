// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/phylochar/dataio"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "phylochar"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "PHYLOCHAR"

	schemaFlagName   = "schema"
	dataTypeFlagName = "data-type"
	outputFlagName   = "output"
	toFlagName       = "to"
	alphabetFlagName = "alphabet"
	logFileFlagName  = "log-file"
	verboseFlagName  = "verbose"

	schemaKey   = "schema"
	dataTypeKey = "data_type"
	outputKey   = "output"
	toKey       = "to"
	alphabetKey = "alphabet"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultSchema        = dataio.SchemaFASTA
	defaultDataType      = "dna"
	defaultLogFilename   = ".phylochar.log"
	defaultLogLevel      = "info"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// logger is configured by the root command before any subcommand runs.
var logger = zap.NewNop()

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(schemaKey, defaultSchema)
	viper.SetDefault(dataTypeKey, defaultDataType)
	viper.SetDefault(outputKey, "")
	viper.SetDefault(toKey, "")
	viper.SetDefault(alphabetKey, "")

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, false)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing config file is fine; defaults and env still apply.
	_ = viper.ReadInConfig()
}

func parseLevel(value string, fallback zapcore.Level) zapcore.Level {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	if value == "warning" {
		value = "warn"
	}
	lvl, err := zapcore.ParseLevel(value)
	if err != nil {
		return fallback
	}

	return lvl
}

// configureLogger builds the process logger: JSON lines to a rotating file,
// and warnings or worse to console.
//
// The file level comes from log.level unless verbose forces debug.
func configureLogger(console io.Writer) *zap.Logger {
	path := strings.TrimSpace(viper.GetString(logFilenameKey))
	if path == "" {
		path = defaultLogFilename
	}
	level := parseLevel(viper.GetString(logLevelKey), zapcore.InfoLevel)
	if viper.GetBool(logVerboseKey) {
		level = zapcore.DebugLevel
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(sink),
		level,
	)

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleConfig.TimeKey = ""
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleConfig),
		zapcore.AddSync(console),
		zapcore.WarnLevel,
	)

	return zap.New(zapcore.NewTee(fileCore, consoleCore))
}
