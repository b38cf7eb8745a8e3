package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ericfisherdev/qalabels/internal/domain/model"
)

var (
	green  = color.New(color.FgHiGreen).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
	red    = color.New(color.FgHiRed).SprintFunc()
)

// newTable creates a tablewriter configured with borderless styling.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}

func renderVerdict(w io.Writer, v model.Verdict) error {
	table := newTable(w, []string{"Check", "Result"})
	rows := [][]string{
		{"QA-relevant", yesNo(v.IsQARelevant)},
		{"Ready to test", yesNo(v.IsRTTSignal)},
		{"Testing Results section", yesNo(v.HasTestingResultsSection)},
		{"Passed", passResult(v.PassedResult)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderDecision(w io.Writer, d model.Decision) error {
	fmt.Fprintf(w, "State:   %s\n", d.State)
	fmt.Fprintf(w, "Outcome: %s\n", outcome(d.Outcome))
	if d.Diagnostic != "" {
		fmt.Fprintf(w, "Note:    %s\n", yellow(d.Diagnostic))
	}

	if len(d.Intents) == 0 {
		fmt.Fprintln(w, "No label changes.")
		return nil
	}

	fmt.Fprintln(w)
	table := newTable(w, []string{"Action", "Label"})
	for _, in := range d.Intents {
		action := green(string(in.Action))
		if in.Action == model.LabelActionRemove {
			action = red(string(in.Action))
		}
		if err := table.Append([]string{action, in.Label}); err != nil {
			return err
		}
	}
	return table.Render()
}

func yesNo(b bool) string {
	if b {
		return green("yes")
	}
	return "no"
}

func passResult(r model.PassResult) string {
	switch r {
	case model.PassPassed:
		return green("passed")
	case model.PassFailed:
		return red("not passed")
	default:
		return yellow("undetermined")
	}
}

func outcome(o model.Outcome) string {
	switch o.Kind {
	case model.OutcomeSuccess:
		return green(string(o.Kind))
	default:
		return red(fmt.Sprintf("%s (%s)", o.Kind, o.Reason))
	}
}
