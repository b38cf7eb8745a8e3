package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/qalabels/internal/application"
	"github.com/ericfisherdev/qalabels/internal/domain/model"
)

func passedReport() *application.Report {
	intents := []model.MutationIntent{
		model.AddLabel("qa-pass"),
		model.RemoveLabel("qa-fail"),
		model.RemoveLabel("rtt"),
	}
	return &application.Report{
		PullRequest: model.PullRequestRef{Owner: "acme", Repo: "widgets", Number: 7},
		Comment:     &model.Comment{Author: "qa-user", Body: "QA Report: Testing Results - Passed"},
		Verdict: model.Verdict{
			IsQARelevant:             true,
			HasTestingResultsSection: true,
			PassedResult:             model.PassPassed,
		},
		Decision: model.Decision{
			State:   model.QAStateReportPassed,
			Intents: intents,
			Outcome: model.Success(),
		},
		Applied: intents,
		Outcome: model.Success(),
	}
}

func emptyFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestReport_Success(t *testing.T) {
	var out bytes.Buffer
	outputPath := emptyFile(t, "output")
	summaryPath := emptyFile(t, "summary")

	err := NewReporterWithPaths(&out, outputPath, summaryPath).Report(passedReport())
	require.NoError(t, err)

	assert.Empty(t, out.String(), "no annotations on success")

	outputs, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "dry-run=false\n"+
		"labels-added=qa-pass\n"+
		"labels-removed=qa-fail,rtt\n"+
		"outcome=success\n"+
		"passed=true\n"+
		"qa-relevant=true\n"+
		"reason=\n"+
		"rtt=false\n"+
		"state=qa_report_passed\n", string(outputs))

	summary, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "### QA labels for acme/widgets#7")
	assert.Contains(t, string(summary), "| Comment by | @qa-user |")
	assert.Contains(t, string(summary), "| Labels removed | `qa-fail`, `rtt` |")
}

func TestReport_SoftFailureAnnotates(t *testing.T) {
	var out bytes.Buffer
	r := &application.Report{
		PullRequest: model.PullRequestRef{Owner: "acme", Repo: "widgets", Number: 7},
		Comment:     &model.Comment{Author: "dev", Body: "Looks good to me"},
		Decision:    model.Decision{State: model.QAStateNoQAComment, Outcome: model.SoftFailure("Not a QA comment")},
		Applied:     []model.MutationIntent{},
		Outcome:     model.SoftFailure("Not a QA comment"),
	}

	err := NewReporterWithPaths(&out, "", "").Report(r)

	require.NoError(t, err)
	assert.Equal(t, "::error::Not a QA comment\n", out.String())
}

func TestReport_DiagnosticWarns(t *testing.T) {
	var out bytes.Buffer
	r := passedReport()
	r.Decision = model.Decision{
		State:      model.QAStateIndeterminate,
		Outcome:    model.Success(),
		Diagnostic: "left unchanged",
	}
	r.Applied = []model.MutationIntent{}

	require.NoError(t, NewReporterWithPaths(&out, "", "").Report(r))

	assert.Equal(t, "::warning::left unchanged\n", out.String())
}

func TestReport_HardFailureWithoutComment(t *testing.T) {
	var out bytes.Buffer
	summaryPath := emptyFile(t, "summary")
	r := &application.Report{
		PullRequest: model.PullRequestRef{Owner: "acme", Repo: "widgets", Number: 7},
		Applied:     []model.MutationIntent{},
		Outcome:     model.HardFailure("no comments found on acme/widgets#7\nretry later"),
	}

	require.NoError(t, NewReporterWithPaths(&out, "", summaryPath).Report(r))

	assert.Equal(t, "::error::no comments found on acme/widgets#7%0Aretry later\n", out.String())
	summary, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.NotContains(t, string(summary), "Comment by")
	assert.Contains(t, string(summary), "| Labels added | - |")
}

func TestSummary_DryRunShowsPlan(t *testing.T) {
	r := passedReport()
	r.DryRun = true
	r.Applied = []model.MutationIntent{}

	summary := Summary(r)

	assert.Contains(t, summary, "| Planned labels (dry run) added | `qa-pass` |")
}

func TestFormatOutputs_SingleLine(t *testing.T) {
	got := formatOutputs(map[string]string{"state": "rtt", "outcome": "success", " ": "skipped"})

	assert.Equal(t, "outcome=success\nstate=rtt\n", got)
}

func TestFormatOutputs_MultiLineUsesHeredoc(t *testing.T) {
	got := formatOutputs(map[string]string{"reason": "line1\r\nline2"})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 4)

	key, delim, ok := strings.Cut(lines[0], "<<")
	require.True(t, ok, "first line should open a heredoc: %q", lines[0])
	assert.Equal(t, "reason", key)
	assert.True(t, strings.HasPrefix(delim, "ghadelimiter_"))
	assert.Equal(t, []string{"line1", "line2"}, lines[1:3])
	assert.Equal(t, delim, lines[3])
}
