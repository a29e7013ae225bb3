// Package cmd provides the difftool CLI: thin cobra commands over the
// root diffutil package.
package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:     "difftool",
	Short:   "DiffUtilTcl's Hunt-McIlroy differ, as a standalone CLI",
	Version: Version,
	Long: `difftool compares files, lists, and strings using the same
Hunt-McIlroy LCS engine and ignore-flag semantics as the Tcl DiffUtil
package it's ported from.`,
	PersistentPreRunE: initRun,
}

// Version is set at build time via -ldflags; left as "dev" otherwise.
var Version = "dev"

var (
	cfgFile  string
	logLevel string
	verbose  bool

	logger  *zap.Logger
	runID   string
	cfg     Config
)

// initRun loads configuration and the logger once per invocation, before
// any subcommand's RunE runs.
func initRun(cmd *cobra.Command, args []string) error {
	loaded, err := LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	l, err := newLogger(cfg.LogLevel, verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	logger = l

	runID = uuid.NewString()
	logger.Debug("difftool invocation", zap.String("run_id", runID), zap.String("command", cmd.Name()))
	return nil
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.DisableStacktrace = true
	if verbose {
		level = "debug"
	}
	if err := zcfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return zcfg.Build()
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a difftool.toml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "shorthand for --log-level debug")
}
