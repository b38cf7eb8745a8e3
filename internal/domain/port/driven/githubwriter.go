package driven

import "context"

// LabelMutator defines the driven port for changing pull request labels.
// It is kept separate from CommentSource so dry runs can omit it.
//
// Both methods are idempotent: adding a label that is already present and
// removing a label that is absent succeed without error.
type LabelMutator interface {
	AddLabel(ctx context.Context, repoFullName string, prNumber int, label string) error
	RemoveLabel(ctx context.Context, repoFullName string, prNumber int, label string) error
}
