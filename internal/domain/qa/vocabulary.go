// Package qa holds the pure QA comment classifier and the label reconciler.
// Nothing in this package performs I/O.
package qa

import "slices"

var defaultQARelevant = []string{
	"Ready To Test",
	"Ready To test",
	"Ready to Test",
	"Ready to test",
	"Ready for Test",
	"Ready for test",
	"Ready for Testing",
	"Ready for QA",
	"Ready for Quality Assurance",
	"Ready for Quality Assurance Testing",
	"RTT",
	"rtt",
	"QA Report",
	"Quality Assurance Tester Report",
	"Quality Assurance Trainee Report",
	"QA Tester Report",
	"QA Trainee Report",
	"Quality Assurance Report",
}

var defaultRTT = []string{
	"Ready to Test",
	"Ready for Testing",
	"Ready for QA",
	"Ready for Quality Assurance",
	"Ready for Quality Assurance Testing",
	"RTT",
}

var defaultFailed = []string{"Not Passed", "Not passed", "not passed", "not Passed"}

var defaultPassed = []string{"Passed", "passed"}

const defaultResultsMarker = "Testing Results"

// Vocabulary is the immutable set of phrases the classifier matches against.
// All matching is case-sensitive substring matching.
type Vocabulary struct {
	qaRelevant    []string
	rtt           []string
	resultsMarker string
	failed        []string
	passed        []string
}

// VocabularyOverrides replaces parts of the default vocabulary. Empty fields
// keep the default.
type VocabularyOverrides struct {
	QARelevant    []string
	RTT           []string
	ResultsMarker string
	Failed        []string
	Passed        []string
}

// DefaultVocabulary returns the built-in phrase tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		qaRelevant:    slices.Clone(defaultQARelevant),
		rtt:           slices.Clone(defaultRTT),
		resultsMarker: defaultResultsMarker,
		failed:        slices.Clone(defaultFailed),
		passed:        slices.Clone(defaultPassed),
	}
}

// NewVocabulary returns the default vocabulary with o applied on top.
func NewVocabulary(o VocabularyOverrides) Vocabulary {
	v := DefaultVocabulary()
	if phrases := nonEmpty(o.QARelevant); len(phrases) > 0 {
		v.qaRelevant = phrases
	}
	if phrases := nonEmpty(o.RTT); len(phrases) > 0 {
		v.rtt = phrases
	}
	if o.ResultsMarker != "" {
		v.resultsMarker = o.ResultsMarker
	}
	if phrases := nonEmpty(o.Failed); len(phrases) > 0 {
		v.failed = phrases
	}
	if phrases := nonEmpty(o.Passed); len(phrases) > 0 {
		v.passed = phrases
	}
	return v
}

// QARelevant returns a copy of the phrases that make a comment QA-relevant.
func (v Vocabulary) QARelevant() []string { return slices.Clone(v.qaRelevant) }

// RTT returns a copy of the ready-to-test phrases.
func (v Vocabulary) RTT() []string { return slices.Clone(v.rtt) }

// ResultsMarker returns the phrase that marks a testing results section.
func (v Vocabulary) ResultsMarker() string { return v.resultsMarker }

// Failed returns a copy of the negative result markers.
func (v Vocabulary) Failed() []string { return slices.Clone(v.failed) }

// Passed returns a copy of the positive result markers.
func (v Vocabulary) Passed() []string { return slices.Clone(v.passed) }

// nonEmpty drops empty phrases. An empty phrase would match every body.
func nonEmpty(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
