package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/qalabels/internal/domain/qa"
)

// vocabularyFile is the on-disk shape of a keywords file. Omitted or empty
// lists keep the built-in phrases.
type vocabularyFile struct {
	QARelevant    []string `toml:"qa_relevant" yaml:"qa_relevant"`
	RTT           []string `toml:"rtt" yaml:"rtt"`
	ResultsMarker string   `toml:"results_marker" yaml:"results_marker"`
	Failed        []string `toml:"failed" yaml:"failed"`
	Passed        []string `toml:"passed" yaml:"passed"`
}

// LoadVocabulary returns the classifier vocabulary. An empty path yields the
// defaults; otherwise the file is decoded as TOML or YAML by extension.
func LoadVocabulary(path string) (qa.Vocabulary, error) {
	if path == "" {
		return qa.DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return qa.Vocabulary{}, fmt.Errorf("reading keywords file: %w", err)
	}

	var f vocabularyFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return qa.Vocabulary{}, fmt.Errorf("parsing keywords file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return qa.Vocabulary{}, fmt.Errorf("parsing keywords file %s: %w", path, err)
		}
	default:
		return qa.Vocabulary{}, fmt.Errorf("keywords file %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}

	return qa.NewVocabulary(qa.VocabularyOverrides{
		QARelevant:    f.QARelevant,
		RTT:           f.RTT,
		ResultsMarker: f.ResultsMarker,
		Failed:        f.Failed,
		Passed:        f.Passed,
	}), nil
}
