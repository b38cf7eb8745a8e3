package model

// PassResult is the outcome detected in a QA report. PassUndetermined is a
// distinct third state: callers must not coerce it to passed or failed.
type PassResult string

const (
	PassUndetermined PassResult = "undetermined"
	PassPassed       PassResult = "true"
	PassFailed       PassResult = "false"
)

// Verdict bundles the classifier's answers for a single comment.
type Verdict struct {
	IsQARelevant             bool
	IsRTTSignal              bool
	HasTestingResultsSection bool
	PassedResult             PassResult
}
