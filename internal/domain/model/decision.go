package model

// QAState is the reconciler state a comment lands in.
type QAState string

const (
	QAStateNoQAComment        QAState = "no_qa_comment"
	QAStateRTT                QAState = "rtt"
	QAStateReportPassed       QAState = "qa_report_passed"
	QAStateReportFailed       QAState = "qa_report_failed"
	QAStateReportUndetermined QAState = "qa_report_undetermined"
	QAStateIndeterminate      QAState = "indeterminate"
)

// OutcomeKind is the terminal status reported to the host.
type OutcomeKind string

const (
	OutcomeSuccess     OutcomeKind = "success"
	OutcomeSoftFailure OutcomeKind = "soft_failure"
	OutcomeHardFailure OutcomeKind = "hard_failure"
)

// Outcome is the terminal status of one invocation. Reason is empty on success.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

// Success returns a successful outcome.
func Success() Outcome {
	return Outcome{Kind: OutcomeSuccess}
}

// SoftFailure returns a policy-driven failure. Decided label mutations are
// still applied.
func SoftFailure(reason string) Outcome {
	return Outcome{Kind: OutcomeSoftFailure, Reason: reason}
}

// HardFailure returns a failure that stops the run before further mutations.
func HardFailure(reason string) Outcome {
	return Outcome{Kind: OutcomeHardFailure, Reason: reason}
}

// Failed reports whether the outcome should fail the invoking step.
func (o Outcome) Failed() bool {
	return o.Kind != OutcomeSuccess
}

// Decision is the reconciler's result for one comment: the state reached,
// the ordered label mutations, the outcome, and an optional diagnostic for
// states with no defined transition.
type Decision struct {
	State      QAState
	Intents    []MutationIntent
	Outcome    Outcome
	Diagnostic string
}
