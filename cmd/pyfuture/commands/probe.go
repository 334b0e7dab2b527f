package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/pyfuture/pkg/probe"
	"gitlab.com/tozd/go/errors"
)

// NewProbeCmd creates a new probe command
func NewProbeCmd(opts *RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [module]",
		Short: "Check whether an optional interpreter module is importable",
		Long: `Probe attempts to import a module through the configured interpreter
and reports its version on success or the import diagnostic on failure.
Defaults to the optional libcst accelerator.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadRunConfig(ctx, opts, ".")
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			module := probe.DefaultOptionalModule
			if len(args) == 1 {
				module = args[0]
			}

			result := probe.Check(ctx, resolveInterpreter(opts, cfg), module, *zerolog.Ctx(ctx))

			reporter := probe.NewReporter(ctx)
			reporter.LogResult(result)

			if !result.Available {
				return errors.Errorf("module %s is not available: %s", module, result.Reason)
			}
			return nil
		},
	}

	return cmd
}
