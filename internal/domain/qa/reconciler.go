package qa

import "github.com/ericfisherdev/qalabels/internal/domain/model"

// Reasons and diagnostics reported with a Decision.
const (
	ReasonNotQAComment = "Not a QA comment"
	ReasonQAFailed     = "QA Reported as NOT PASSED"

	DiagnosticUndetermined  = "QA report found but no Passed / Not Passed marker; labels left unchanged"
	DiagnosticIndeterminate = "QA comment is neither ready-to-test nor a report with Testing Results; labels left unchanged"
)

// Reconciler turns a verdict into label mutations and an outcome. It holds
// only immutable configuration and never performs I/O.
type Reconciler struct {
	labels model.LabelConfig
	policy model.FailurePolicy
}

// NewReconciler creates a Reconciler for the given labels and failure policy.
func NewReconciler(labels model.LabelConfig, policy model.FailurePolicy) *Reconciler {
	return &Reconciler{
		labels: labels.Normalize(),
		policy: policy,
	}
}

// Reconcile evaluates the transitions in order: not QA-relevant, ready to
// test, QA report (passed, failed, undetermined), then indeterminate.
func (r *Reconciler) Reconcile(v model.Verdict) model.Decision {
	switch {
	case !v.IsQARelevant:
		d := model.Decision{State: model.QAStateNoQAComment, Intents: []model.MutationIntent{}, Outcome: model.Success()}
		if r.policy.FailIfNoQAComment {
			d.Outcome = model.SoftFailure(ReasonNotQAComment)
		}
		return d

	case v.IsRTTSignal:
		p := plan{}
		if r.labels.RTT != "" {
			p.add(r.labels.RTT)
		}
		return model.Decision{State: model.QAStateRTT, Intents: p.intents(), Outcome: model.Success()}

	case v.HasTestingResultsSection:
		return r.reconcileReport(v.PassedResult)

	default:
		return model.Decision{
			State:      model.QAStateIndeterminate,
			Intents:    []model.MutationIntent{},
			Outcome:    model.Success(),
			Diagnostic: DiagnosticIndeterminate,
		}
	}
}

func (r *Reconciler) reconcileReport(result model.PassResult) model.Decision {
	p := plan{}

	switch result {
	case model.PassFailed:
		if r.labels.Fail != "" {
			p.add(r.labels.Fail)
			if r.labels.Pass != "" {
				p.remove(r.labels.Pass)
			}
		}
		d := model.Decision{State: model.QAStateReportFailed, Intents: p.intents(), Outcome: model.Success()}
		if r.policy.FailIfQAFailed {
			d.Outcome = model.SoftFailure(ReasonQAFailed)
		}
		return d

	case model.PassPassed:
		if r.labels.Pass != "" {
			p.add(r.labels.Pass)
			if r.labels.Fail != "" {
				p.remove(r.labels.Fail)
			}
		}
		// A passing report retires any outstanding ready-to-test marker.
		if r.labels.RTT != "" {
			p.remove(r.labels.RTT)
		}
		return model.Decision{State: model.QAStateReportPassed, Intents: p.intents(), Outcome: model.Success()}

	default:
		return model.Decision{
			State:      model.QAStateReportUndetermined,
			Intents:    p.intents(),
			Outcome:    model.Success(),
			Diagnostic: DiagnosticUndetermined,
		}
	}
}

// plan accumulates intents and never removes a label it has already added,
// so one invocation cannot both add and remove the same name.
type plan struct {
	list  []model.MutationIntent
	added map[string]bool
}

func (p *plan) add(label string) {
	if p.added == nil {
		p.added = map[string]bool{}
	}
	if p.added[label] {
		return
	}
	p.added[label] = true
	p.list = append(p.list, model.AddLabel(label))
}

func (p *plan) remove(label string) {
	if p.added[label] {
		return
	}
	for _, in := range p.list {
		if in.Action == model.LabelActionRemove && in.Label == label {
			return
		}
	}
	p.list = append(p.list, model.RemoveLabel(label))
}

func (p *plan) intents() []model.MutationIntent {
	if p.list == nil {
		return []model.MutationIntent{}
	}
	return p.list
}
