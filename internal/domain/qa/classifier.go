package qa

import (
	"strings"

	"github.com/ericfisherdev/qalabels/internal/domain/model"
)

// Classifier answers questions about a single comment body using a fixed
// Vocabulary. It is safe for concurrent use.
type Classifier struct {
	vocab Vocabulary
}

// NewClassifier creates a Classifier over vocab.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{vocab: vocab}
}

// IsQARelevant reports whether the body contains any QA-relevant phrase.
func (c *Classifier) IsQARelevant(comment model.Comment) bool {
	return containsAny(comment.Body, c.vocab.qaRelevant)
}

// IsRTTSignal reports whether the body contains any ready-to-test phrase.
func (c *Classifier) IsRTTSignal(comment model.Comment) bool {
	return containsAny(comment.Body, c.vocab.rtt)
}

// HasTestingResultsSection reports whether the body contains the results marker.
func (c *Classifier) HasTestingResultsSection(comment model.Comment) bool {
	return strings.Contains(comment.Body, c.vocab.resultsMarker)
}

// PassedResult detects the reported test result. Negative markers are checked
// first because "Not Passed" also contains "Passed".
func (c *Classifier) PassedResult(comment model.Comment) model.PassResult {
	switch {
	case containsAny(comment.Body, c.vocab.failed):
		return model.PassFailed
	case containsAny(comment.Body, c.vocab.passed):
		return model.PassPassed
	default:
		return model.PassUndetermined
	}
}

// Classify runs every check and returns the verdict bundle.
func (c *Classifier) Classify(comment model.Comment) model.Verdict {
	return model.Verdict{
		IsQARelevant:             c.IsQARelevant(comment),
		IsRTTSignal:              c.IsRTTSignal(comment),
		HasTestingResultsSection: c.HasTestingResultsSection(comment),
		PassedResult:             c.PassedResult(comment),
	}
}

func containsAny(body string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(body, p) {
			return true
		}
	}
	return false
}
