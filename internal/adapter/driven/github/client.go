// Package github implements the CommentSource and LabelMutator ports using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/qalabels/internal/domain/model"
	"github.com/ericfisherdev/qalabels/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CommentSource = (*Client)(nil)

// commentsPerPage is the GitHub maximum page size for issue comments.
const commentsPerPage = 100

// Client implements the driven ports using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a new GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with token auth)
//
// token may be empty for read-only access to public repositories. apiURL
// overrides the REST base URL (GitHub Enterprise Server); empty keeps
// api.github.com.
func NewClient(token, apiURL string) (*Client, error) {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	if apiURL != "" {
		u, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing GitHub API URL: %w", err)
		}
		client.BaseURL = u
	}

	return &Client{gh: client}, nil
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, token string) (*Client, error) {
	client := gh.NewClient(httpClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// FetchLatestComment returns the most recent general comment on a pull request.
// The Issues API lists comments oldest first and does not support sorting on
// this endpoint, so when more than one page exists the last page is fetched
// directly instead of walking every page.
func (c *Client) FetchLatestComment(ctx context.Context, repoFullName string, prNumber int) (*model.Comment, error) {
	owner, repo, err := splitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: commentsPerPage},
	}

	comments, resp, err := c.gh.Issues.ListComments(ctx, owner, repo, prNumber, opts)
	if err != nil {
		return nil, fmt.Errorf("listing issue comments for %s#%d: %w", repoFullName, prNumber, err)
	}
	logRateLimit(resp, repoFullName+"/comments", opts.Page, len(comments))

	if resp.LastPage > 1 {
		opts.Page = resp.LastPage
		comments, resp, err = c.gh.Issues.ListComments(ctx, owner, repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("listing issue comments for %s#%d (page %d): %w", repoFullName, prNumber, opts.Page, err)
		}
		logRateLimit(resp, repoFullName+"/comments", opts.Page, len(comments))
	}

	if len(comments) == 0 {
		return nil, fmt.Errorf("%s#%d: %w", repoFullName, prNumber, driven.ErrNoComments)
	}

	latest := mapIssueComment(comments[len(comments)-1])
	return &latest, nil
}

// mapIssueComment converts a go-github IssueComment to a domain model Comment.
func mapIssueComment(c *gh.IssueComment) model.Comment {
	return model.Comment{
		ID:        c.GetID(),
		Author:    c.GetUser().GetLogin(),
		Body:      c.GetBody(),
		URL:       c.GetHTMLURL(),
		CreatedAt: c.GetCreatedAt().Time,
	}
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, page, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"page", page,
		"count", count,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 100 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// splitRepo splits a "owner/repo" string into its two components.
func splitRepo(fullName string) (string, string, error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo name %q: expected owner/repo", fullName)
	}
	return parts[0], parts[1], nil
}
