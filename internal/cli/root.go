// SPDX-License-Identifier: MIT

// Package cli implements the poset command-line front end.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/poset/incidence"
	"github.com/katalvlaran/poset/internal/config"
	"github.com/katalvlaran/poset/internal/logging"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries per-invocation state shared by the subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	format     string
	logLevel   string
	verbose    bool

	cfg     config.Config
	out     incidence.Format
	logger  *zap.Logger
	cleanup func() error
}

// NewRootCmd builds the command tree writing results to stdout and logs to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "poset",
		Short: "Validate, expand, reduce and sort partial orders",
		Long: `poset reads a partial order encoded as a 0/1 incidence matrix and derives
its transitive expansion, transitive reduction and a topological order.

Input files are text (one row per line, space-separated 0/1 cells) or YAML
(.yaml/.yml, with optional element labels).

Examples:
  poset expand relation.txt
  poset reduce --format yaml relation.yaml
  poset sort relation.txt`,
		SilenceUsage:      true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.setup() },
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.format, "format", "", "output format: text or yaml (default from config)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		a.expandCmd(),
		a.reduceCmd(),
		a.sortCmd(),
		a.validateCmd(),
		versionCmd(),
	)

	return cmd
}

// setup resolves configuration and builds the logger.
// Precedence: flags > environment > config file > defaults.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	out, err := incidence.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var logger *zap.Logger
	cleanup := func() error { return nil }
	if cfg.Logging.Output == "" || cfg.Logging.Output == "stderr" {
		logger, err = logging.NewWithWriter(cfg.Logging, a.stderr)
	} else {
		logger, cleanup, err = logging.New(cfg.Logging)
	}
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}

	a.cfg, a.out, a.logger, a.cleanup = cfg, out, logger, cleanup
	a.logger.Debug("configuration resolved",
		zap.String("config", a.configPath),
		zap.String("format", string(out)),
		zap.String("log_level", cfg.Logging.Level))

	return nil
}

// close flushes the logger and releases its destination.
func (a *app) close() {
	_ = a.logger.Sync()
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

// runE adapts fn into a cobra RunE that always releases the logger.
func (a *app) runE(fn func(path string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		defer a.close()
		return fn(args[0])
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Overrides the root hook: version needs neither config nor a logger.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "poset version %s\n", Version)
		},
	}
}
