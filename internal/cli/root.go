// Package cli defines the qalabels command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// errOutcomeFailed marks a run whose failure was already reported through
// workflow commands and logs; Execute only turns it into a non-zero exit.
var errOutcomeFailed = errors.New("qa labels run failed")

// options holds flags shared by every command.
type options struct {
	envFile      string
	keywordsFile string
	logLevel     string
	dryRun       bool
	noColor      bool
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errOutcomeFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "qalabels",
		Short: "Reconcile QA labels on a pull request from its latest comment",
		Long: `qalabels reads the latest comment on a pull request, classifies it as a
ready-to-test signal or a QA report, and adds or removes the configured
pass / fail / ready-to-test labels to match.

Inputs are read from the GitHub Actions INPUT_* environment variables.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReconcile(cmd.Context(), opts, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load inputs from this .env file (default .env when present)")
	cmd.PersistentFlags().StringVar(&opts.keywordsFile, "keywords", "", "Keyword vocabulary file (.toml, .yaml or .yml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Compute label changes without applying them")

	cmd.AddCommand(newClassifyCommand(opts))

	return cmd
}
