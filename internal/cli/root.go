// Package cli wires the lvkit packages into the lvkit command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvkit/files"
)

// app carries state shared by every subcommand.
type app struct {
	cfg     Config
	log     *zap.Logger
	verbose bool
	envFile string
	timeout time.Duration
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "lvkit",
		Short:         "lvkit - everyday helpers for text, data, files and the web",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.timeout > 0 {
				a.cfg.Timeout = a.timeout
			}
			a.log, err = buildLogger(cfg.LogLevel, a.verbose)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load when present")
	cmd.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "operation timeout (default LVKIT_TIMEOUT or 30s)")

	cmd.AddCommand(
		slugCmd(a),
		uuidCmd(a),
		jsonCmd(a),
		sqlCmd(a),
		colorCmd(a),
		distanceCmd(a),
		phoneCmd(a),
		emailCmd(a),
		hashCmd(a),
		sysinfoCmd(a),
		seoCmd(a),
		vocabCmd(a),
	)
	return cmd
}

// buildLogger writes JSON logs to stderr so stdout stays clean for
// command output.
func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LVKIT_LOG_LEVEL: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.Timeout)
}

// input reads the file named by args[0], or stdin when it is absent or "-".
func input(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return files.Read(args[0])
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func indent(n int) string { return strings.Repeat(" ", n) }
