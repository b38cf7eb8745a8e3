package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/qalabels/internal/domain/model"
)

// ErrNoComments is returned by CommentSource when the pull request has no
// general comments.
var ErrNoComments = errors.New("pull request has no comments")

// CommentSource defines the driven port for reading pull request comments.
type CommentSource interface {
	// FetchLatestComment returns the most recent general comment on the pull
	// request, or ErrNoComments if there is none.
	FetchLatestComment(ctx context.Context, repoFullName string, prNumber int) (*model.Comment, error)
}
