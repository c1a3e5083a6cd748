// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tridiag/config"
	"github.com/katalvlaran/tridiag/fixture"
	"github.com/katalvlaran/tridiag/service"
)

// errFailed marks runs that completed but reported failures; the result was
// already printed.
var errFailed = errors.New("one or more runs failed")

// app carries the state shared by every subcommand.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	logger  *zap.Logger
	runner  *service.Runner
}

// NewRootCommand builds the tridiag command tree. Output goes to the
// command's out writer (stdout unless SetOut is called).
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:           "tridiag",
		Short:         "tridiag - verify boundary-extended tridiagonal systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.String("backend", config.DefaultBackend, "numeric backend: float64|bigfloat|decimal")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug|info|warn|error")
	pf.Duration("timeout", config.DefaultTimeout, "timeout per command (0 disables)")
	pf.String("fixtures", config.DefaultFixturesDir, "fixture directory")
	pf.Bool("cross-check", false, "compare solutions against float64 reference solvers")
	pf.Int("workers", config.DefaultWorkers, "parallel runs for batch")
	bind := map[string]string{
		config.KeyBackend:     "backend",
		config.KeyLogLevel:    "log-level",
		config.KeyTimeout:     "timeout",
		config.KeyFixturesDir: "fixtures",
		config.KeyCrossCheck:  "cross-check",
		config.KeyWorkers:     "workers",
	}
	for key, flag := range bind {
		// Lookup cannot fail: every flag is declared above.
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		a.solveCommand(),
		a.checkCommand(),
		a.batchCommand(),
		a.fixturesCommand(),
		a.serveCommand(),
	)

	return root
}

// Execute runs the command tree against os.Args and reports failures on stderr.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}

	return err
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	runner, err := service.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.runner = cfg, logger, runner

	return nil
}

// context derives the per-command context honouring the configured timeout.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}

	return context.WithCancel(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zc.Build()
}

// isPath reports whether arg names a file rather than a fixture id. Anything
// that is not a valid id (a dot, a separator) is taken as a path.
func isPath(arg string) bool {
	return fixture.ValidateID(arg) != nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
