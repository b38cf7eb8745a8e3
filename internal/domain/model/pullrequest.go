package model

import "fmt"

// PullRequestRef identifies the pull request an invocation works on.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

// FullName returns the "owner/repo" form used by the GitHub adapter.
func (r PullRequestRef) FullName() string {
	return r.Owner + "/" + r.Repo
}

// String returns "owner/repo#number".
func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s#%d", r.FullName(), r.Number)
}
