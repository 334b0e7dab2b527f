package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/pyfuture/pkg/probe"
	"gitlab.com/tozd/go/errors"
)

// NewSelfTestCmd creates a new selftest command
func NewSelfTestCmd(opts *RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Verify the fixed list of interpreter modules all import cleanly",
		Long: `Selftest probes every module the rewritten output relies on and
reports pass or fail per module. The exit code is zero only when every
module imports cleanly; a module that imports but would fail deeper at
runtime still counts as a pass.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadRunConfig(ctx, opts, ".")
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			results := probe.SelfTest(ctx, resolveInterpreter(opts, cfg), probe.DefaultSelfTestModules, *zerolog.Ctx(ctx))

			reporter := probe.NewReporter(ctx)
			for _, result := range results {
				reporter.LogResult(result)
			}

			passed := probe.AllPassed(results)
			reporter.LogOverall(passed)

			if !passed {
				return errors.Errorf("self-test failed")
			}
			return nil
		},
	}

	return cmd
}
