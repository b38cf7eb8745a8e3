package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/qalabels/internal/config"
	"github.com/ericfisherdev/qalabels/internal/domain/model"
	"github.com/ericfisherdev/qalabels/internal/domain/qa"
)

func newClassifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify a comment body offline and show the label plan",
		Long: `Classify reads a comment body from the arguments, or from stdin when no
arguments are given, and prints the verdicts and the label changes the
configured labels would receive. No GitHub API calls are made.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := strings.Join(args, " ")
			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading comment from stdin: %w", err)
				}
				body = string(raw)
			}

			cfg, err := config.Parse(config.Overrides{
				EnvFile:      opts.envFile,
				KeywordsFile: opts.keywordsFile,
			})
			if err != nil {
				return err
			}
			vocab, err := config.LoadVocabulary(cfg.KeywordsFile)
			if err != nil {
				return err
			}

			verdict := qa.NewClassifier(vocab).Classify(model.Comment{Body: body})
			decision := qa.NewReconciler(cfg.Labels, cfg.Policy).Reconcile(verdict)

			out := cmd.OutOrStdout()
			if err := renderVerdict(out, verdict); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return renderDecision(out, decision)
		},
	}
}
