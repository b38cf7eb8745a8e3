package actions

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ericfisherdev/qalabels/internal/application"
	"github.com/ericfisherdev/qalabels/internal/domain/model"
)

// Reporter writes a Report to the Actions runner.
type Reporter struct {
	out         io.Writer
	outputPath  string
	summaryPath string
}

// NewReporter creates a Reporter that writes workflow commands to out and
// reads the runner file paths from GITHUB_OUTPUT and GITHUB_STEP_SUMMARY.
func NewReporter(out io.Writer) *Reporter {
	return NewReporterWithPaths(out,
		strings.TrimSpace(os.Getenv("GITHUB_OUTPUT")),
		strings.TrimSpace(os.Getenv("GITHUB_STEP_SUMMARY")),
	)
}

// NewReporterWithPaths creates a Reporter with explicit runner file paths.
// Empty paths disable the corresponding output.
func NewReporterWithPaths(out io.Writer, outputPath, summaryPath string) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out, outputPath: outputPath, summaryPath: summaryPath}
}

// Report emits annotations, step outputs and the step summary for r.
func (rp *Reporter) Report(r *application.Report) error {
	if r.Decision.Diagnostic != "" {
		rp.Warning(r.Decision.Diagnostic)
	}
	if r.Outcome.Failed() {
		rp.Error(r.Outcome.Reason)
	}

	if err := appendFile(rp.outputPath, formatOutputs(Outputs(r))); err != nil {
		return fmt.Errorf("writing step outputs: %w", err)
	}
	if err := appendFile(rp.summaryPath, Summary(r)); err != nil {
		return fmt.Errorf("writing step summary: %w", err)
	}
	return nil
}

// Error emits an ::error:: workflow command.
func (rp *Reporter) Error(message string) {
	fmt.Fprintf(rp.out, "::error::%s\n", escapeCommandData(message))
}

// Warning emits a ::warning:: workflow command.
func (rp *Reporter) Warning(message string) {
	fmt.Fprintf(rp.out, "::warning::%s\n", escapeCommandData(message))
}

// Outputs returns the step outputs for r.
func Outputs(r *application.Report) map[string]string {
	return map[string]string{
		"outcome":        string(r.Outcome.Kind),
		"reason":         r.Outcome.Reason,
		"state":          string(r.Decision.State),
		"qa-relevant":    strconv.FormatBool(r.Verdict.IsQARelevant),
		"rtt":            strconv.FormatBool(r.Verdict.IsRTTSignal),
		"passed":         string(r.Verdict.PassedResult),
		"labels-added":   strings.Join(model.LabelsFor(r.Applied, model.LabelActionAdd), ","),
		"labels-removed": strings.Join(model.LabelsFor(r.Applied, model.LabelActionRemove), ","),
		"dry-run":        strconv.FormatBool(r.DryRun),
	}
}

// Summary renders r as a markdown section for the job summary.
func Summary(r *application.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### QA labels for %s\n\n", r.PullRequest)
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Outcome | %s |\n", r.Outcome.Kind)
	if r.Outcome.Reason != "" {
		fmt.Fprintf(&b, "| Reason | %s |\n", escapeCell(r.Outcome.Reason))
	}
	if r.Comment != nil {
		fmt.Fprintf(&b, "| Comment by | @%s |\n", r.Comment.Author)
		fmt.Fprintf(&b, "| State | %s |\n", r.Decision.State)
		fmt.Fprintf(&b, "| Passed | %s |\n", r.Verdict.PassedResult)
	}

	intents, verb := r.Applied, "Labels"
	if r.DryRun {
		intents, verb = r.Decision.Intents, "Planned labels (dry run)"
	}
	added := model.LabelsFor(intents, model.LabelActionAdd)
	removed := model.LabelsFor(intents, model.LabelActionRemove)
	fmt.Fprintf(&b, "| %s added | %s |\n", verb, joinOrDash(added))
	fmt.Fprintf(&b, "| %s removed | %s |\n", verb, joinOrDash(removed))
	if r.Decision.Diagnostic != "" {
		fmt.Fprintf(&b, "\n> %s\n", r.Decision.Diagnostic)
	}
	b.WriteString("\n")

	return b.String()
}

func joinOrDash(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = "`" + escapeCell(l) + "`"
	}
	return strings.Join(quoted, ", ")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
