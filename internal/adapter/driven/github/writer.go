package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ericfisherdev/qalabels/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.LabelMutator = (*Client)(nil)

// AddLabel adds a label to a pull request. GitHub treats adding a label that
// is already present as a no-op.
func (c *Client) AddLabel(ctx context.Context, repoFullName string, prNumber int, label string) error {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return err
	}

	_, resp, err := c.gh.Issues.AddLabelsToIssue(ctx, owner, repo, prNumber, []string{label})
	if err != nil {
		return fmt.Errorf("adding label %q to %s#%d: %w", label, repoFullName, prNumber, err)
	}

	logRateLimit(resp, repoFullName+"/add-label", 0, 1)
	return nil
}

// RemoveLabel removes a label from a pull request. A 404 means the label is
// not on the pull request and is treated as success. The label is a single
// path segment, so names containing "/" must be escaped or GitHub 404s.
func (c *Client) RemoveLabel(ctx context.Context, repoFullName string, prNumber int, label string) error {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return err
	}

	resp, err := c.gh.Issues.RemoveLabelForIssue(ctx, owner, repo, prNumber, url.PathEscape(label))
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			slog.Debug("label already absent", "label", label, "repo", repoFullName, "pr", prNumber)
			return nil
		}
		return fmt.Errorf("removing label %q from %s#%d: %w", label, repoFullName, prNumber, err)
	}

	logRateLimit(resp, repoFullName+"/remove-label", 0, 1)
	return nil
}
