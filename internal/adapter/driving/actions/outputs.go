// Package actions reports an invocation's result to the GitHub Actions runner:
// step outputs, workflow command annotations and the job step summary.
package actions

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// appendFile appends text to a runner-provided file. An empty path means the
// runner did not provide one and nothing is written.
func appendFile(path, text string) error {
	if path == "" || text == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.WriteString(text)
	return err
}

// formatOutputs renders values in key order. Single-line values use the
// key=value form; multi-line values use the key<<DELIMITER heredoc form the
// runner expects.
func formatOutputs(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		value := strings.ReplaceAll(values[key], "\r\n", "\n")
		if !strings.ContainsAny(value, "\r\n") {
			fmt.Fprintf(&b, "%s=%s\n", key, value)
			continue
		}
		delim := outputDelimiter(value)
		fmt.Fprintf(&b, "%s<<%s\n%s\n%s\n", key, delim, value, delim)
	}
	return b.String()
}

// outputDelimiter returns a heredoc delimiter that does not occur in value.
func outputDelimiter(value string) string {
	for {
		delim := "ghadelimiter_" + uuid.NewString()
		if !strings.Contains(value, delim) {
			return delim
		}
	}
}

// escapeCommandData escapes a workflow command message.
func escapeCommandData(value string) string {
	value = strings.ReplaceAll(value, "%", "%25")
	value = strings.ReplaceAll(value, "\r", "%0D")
	value = strings.ReplaceAll(value, "\n", "%0A")
	return value
}
