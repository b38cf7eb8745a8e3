// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/qalabels/internal/domain/model"
	"github.com/ericfisherdev/qalabels/internal/domain/port/driven"
	"github.com/ericfisherdev/qalabels/internal/domain/qa"
)

// Report describes one invocation: the comment that was classified, the
// decision taken, the label mutations actually applied, and the outcome.
type Report struct {
	PullRequest model.PullRequestRef
	Comment     *model.Comment
	Verdict     model.Verdict
	Decision    model.Decision
	Applied     []model.MutationIntent
	DryRun      bool
	Outcome     model.Outcome
}

// LabelService reconciles QA labels on a pull request from its latest comment.
// It depends only on port interfaces and the pure qa package.
type LabelService struct {
	comments   driven.CommentSource
	labels     driven.LabelMutator
	classifier *qa.Classifier
	reconciler *qa.Reconciler
	logger     *slog.Logger
}

// NewLabelService creates a LabelService. labels may be nil, in which case
// Run computes the decision but applies nothing (dry run).
func NewLabelService(
	comments driven.CommentSource,
	labels driven.LabelMutator,
	classifier *qa.Classifier,
	reconciler *qa.Reconciler,
	logger *slog.Logger,
) *LabelService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LabelService{
		comments:   comments,
		labels:     labels,
		classifier: classifier,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Run fetches the latest comment, classifies it, and applies the resulting
// label mutations in order. Transport failures stop the run immediately and
// are returned as an error alongside a report with a hard-failure outcome.
// Soft failures are reported through Report.Outcome only, after every
// decided mutation has been applied.
func (s *LabelService) Run(ctx context.Context, pr model.PullRequestRef) (*Report, error) {
	report := &Report{
		PullRequest: pr,
		Applied:     []model.MutationIntent{},
		DryRun:      s.labels == nil,
	}

	s.logger.Info("fetching comments", "pr", pr.String())

	comment, err := s.comments.FetchLatestComment(ctx, pr.FullName(), pr.Number)
	if err != nil {
		if errors.Is(err, driven.ErrNoComments) {
			report.Outcome = model.HardFailure(fmt.Sprintf("no comments found on %s", pr))
		} else {
			report.Outcome = model.HardFailure(err.Error())
		}
		return report, fmt.Errorf("fetching latest comment: %w", err)
	}
	report.Comment = comment
	s.logger.Info("last comment found", "author", comment.Author, "comment_id", comment.ID)

	report.Verdict = s.classifier.Classify(*comment)
	report.Decision = s.reconciler.Reconcile(report.Verdict)
	s.logDecision(report.Decision)

	if err := s.apply(ctx, pr, report); err != nil {
		report.Outcome = model.HardFailure(err.Error())
		return report, err
	}

	report.Outcome = report.Decision.Outcome
	return report, nil
}

// apply executes intents sequentially, recording each successful mutation.
func (s *LabelService) apply(ctx context.Context, pr model.PullRequestRef, report *Report) error {
	for _, intent := range report.Decision.Intents {
		if s.labels == nil {
			s.logger.Info("dry run: skipping label change", "action", intent.Action, "label", intent.Label, "pr", pr.String())
			continue
		}

		var err error
		switch intent.Action {
		case model.LabelActionAdd:
			err = s.labels.AddLabel(ctx, pr.FullName(), pr.Number, intent.Label)
		case model.LabelActionRemove:
			err = s.labels.RemoveLabel(ctx, pr.FullName(), pr.Number, intent.Label)
		default:
			err = fmt.Errorf("unknown label action %q", intent.Action)
		}
		if err != nil {
			return fmt.Errorf("applying %s %q: %w", intent.Action, intent.Label, err)
		}

		report.Applied = append(report.Applied, intent)
		s.logger.Info("label changed", "action", intent.Action, "label", intent.Label, "pr", pr.String())
	}
	return nil
}

func (s *LabelService) logDecision(d model.Decision) {
	switch d.State {
	case model.QAStateNoQAComment:
		s.logger.Info("not a QA comment")
	case model.QAStateRTT:
		s.logger.Info("QA RTT comment found")
	case model.QAStateReportPassed:
		s.logger.Info("QA report comment found", "result", "passed")
	case model.QAStateReportFailed:
		s.logger.Info("QA report comment found", "result", "not passed")
	case model.QAStateReportUndetermined, model.QAStateIndeterminate:
		s.logger.Warn("QA comment left unclassified", "state", d.State, "diagnostic", d.Diagnostic)
	}
}
