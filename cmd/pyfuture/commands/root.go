package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/pyfuture/pkg/config"
	"github.com/walteh/pyfuture/pkg/log"
	"github.com/walteh/pyfuture/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RootOpts carries flag values shared across commands
type RootOpts struct {
	ConfigPath  string
	Directive   string
	Interpreter string
	DryRun      bool
	Debug       bool
}

// NewRootCmd creates the pyfuture command tree. The root command itself runs
// the annotate operation over an optional positional root directory.
func NewRootCmd() *cobra.Command {
	opts := &RootOpts{}

	cmd := &cobra.Command{
		Use:   "pyfuture [root]",
		Short: "Ensure every Python file declares postponed annotation evaluation",
		Long: `pyfuture walks a tree of Python source files and inserts
"from __future__ import annotations" into each one, after any leading
comments and the module docstring but before the first statement.
Files that already contain the directive are left untouched, so the
rewrite is safe to run as many times as you like.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if opts.Debug {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
				w.Out = os.Stderr
			})).With().Timestamp().Logger().Level(level)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := loadRunConfig(ctx, opts, root)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			if opts.Directive != "" {
				cfg.Directive = opts.Directive
			}

			level := zerolog.InfoLevel
			if opts.Debug {
				level = zerolog.DebugLevel
			}
			consoleLogger := log.New(os.Stdout, level)

			op, err := operation.New(operation.Options{
				Config: cfg,
				Logger: consoleLogger,
				DryRun: opts.DryRun,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			if _, err := op.Annotate(ctx, root); err != nil {
				return errors.Errorf("annotating %s: %w", root, err)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to config file (default: .pyfuture.{yaml,json,hcl} at the root)")
	cmd.Flags().StringVar(&opts.Directive, "directive", "", "Override the directive line to insert")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would change without writing")
	cmd.PersistentFlags().StringVar(&opts.Interpreter, "interpreter", "", "Interpreter used by probe and selftest (default: python3)")

	cmd.AddCommand(
		NewProbeCmd(opts),
		NewSelfTestCmd(opts),
	)

	return cmd
}

// loadRunConfig loads the config from --config when given, otherwise from
// whatever .pyfuture file sits at root, otherwise the built-in defaults.
func loadRunConfig(ctx context.Context, opts *RootOpts, root string) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(ctx, opts.ConfigPath)
	}
	return config.LoadOrDefault(ctx, root)
}

// resolveInterpreter picks the interpreter: flag wins over config, and config
// validation guarantees a non-empty default.
func resolveInterpreter(opts *RootOpts, cfg *config.Config) string {
	if opts.Interpreter != "" {
		return opts.Interpreter
	}
	return cfg.Interpreter
}
