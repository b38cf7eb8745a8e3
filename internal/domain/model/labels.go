package model

import "strings"

// LabelConfig names the labels the reconciler manages. An empty name means
// the label is not managed.
type LabelConfig struct {
	Pass string
	Fail string
	RTT  string
}

// Normalize trims surrounding whitespace from every label name.
func (l LabelConfig) Normalize() LabelConfig {
	return LabelConfig{
		Pass: strings.TrimSpace(l.Pass),
		Fail: strings.TrimSpace(l.Fail),
		RTT:  strings.TrimSpace(l.RTT),
	}
}

// FailurePolicy selects which data-driven results end the run as a soft failure.
type FailurePolicy struct {
	FailIfNoQAComment bool
	FailIfQAFailed    bool
}

// LabelAction is the kind of label mutation.
type LabelAction string

const (
	LabelActionAdd    LabelAction = "add"
	LabelActionRemove LabelAction = "remove"
)

// MutationIntent is one label change to apply to the pull request.
type MutationIntent struct {
	Action LabelAction
	Label  string
}

// AddLabel returns an intent that adds label.
func AddLabel(label string) MutationIntent {
	return MutationIntent{Action: LabelActionAdd, Label: label}
}

// RemoveLabel returns an intent that removes label.
func RemoveLabel(label string) MutationIntent {
	return MutationIntent{Action: LabelActionRemove, Label: label}
}

// LabelsFor returns the label names in intents with the given action, in order.
func LabelsFor(intents []MutationIntent, action LabelAction) []string {
	labels := []string{}
	for _, in := range intents {
		if in.Action == action {
			labels = append(labels, in.Label)
		}
	}
	return labels
}
