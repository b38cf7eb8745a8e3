package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	githubadapter "github.com/ericfisherdev/qalabels/internal/adapter/driven/github"
	"github.com/ericfisherdev/qalabels/internal/adapter/driving/actions"
	"github.com/ericfisherdev/qalabels/internal/application"
	"github.com/ericfisherdev/qalabels/internal/config"
	"github.com/ericfisherdev/qalabels/internal/domain/port/driven"
	"github.com/ericfisherdev/qalabels/internal/domain/qa"
	"github.com/ericfisherdev/qalabels/internal/logging"
)

// runReconcile is the composition root for a reconcile run.
func runReconcile(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	reporter := actions.NewReporter(stdout)

	// 1. Load configuration (fail fast before any API call).
	cfg, err := config.Load(config.Overrides{
		EnvFile:      opts.envFile,
		KeywordsFile: opts.keywordsFile,
		LogLevel:     opts.logLevel,
		DryRun:       opts.dryRun,
	})
	if err != nil {
		reporter.Error(err.Error())
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(stderr, logging.ParseLevel(cfg.LogLevel), opts.noColor)
	slog.SetDefault(logger)
	logger.Info("starting qalabels",
		"version", Version,
		"pr", cfg.PullRequest.String(),
		"label_pass", cfg.Labels.Pass,
		"label_fail", cfg.Labels.Fail,
		"label_rtt", cfg.Labels.RTT,
		"dry_run", cfg.DryRun,
	)

	// 2. Build the classifier vocabulary.
	vocab, err := config.LoadVocabulary(cfg.KeywordsFile)
	if err != nil {
		reporter.Error(err.Error())
		return err
	}

	// 3. Wire adapters. Dry runs get no label mutator.
	client, err := githubadapter.NewClient(cfg.GitHubToken, cfg.GitHubAPIURL)
	if err != nil {
		reporter.Error(err.Error())
		return err
	}
	var mutator driven.LabelMutator
	if !cfg.DryRun {
		mutator = client
	}

	svc := application.NewLabelService(
		client,
		mutator,
		qa.NewClassifier(vocab),
		qa.NewReconciler(cfg.Labels, cfg.Policy),
		logger,
	)

	// 4. Run and report.
	report, runErr := svc.Run(ctx, cfg.PullRequest)
	if err := reporter.Report(report); err != nil {
		logger.Error("reporting to runner failed", "error", err)
	}

	if cfg.DryRun && report.Comment != nil {
		if err := renderDecision(stdout, report.Decision); err != nil {
			logger.Error("rendering plan failed", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("action failed", "error", runErr)
		return errOutcomeFailed
	}
	if report.Outcome.Failed() {
		logger.Error("action failed", "reason", report.Outcome.Reason)
		return errOutcomeFailed
	}

	logger.Info("action completed successfully", "labels_changed", len(report.Applied))
	return nil
}
