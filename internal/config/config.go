// Package config loads invocation inputs from the GitHub Actions environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ericfisherdev/qalabels/internal/domain/model"
)

// defaultEnvFile is loaded when present and no explicit env file is given.
const defaultEnvFile = ".env"

// inputs mirrors the action.yml inputs. The runner exposes each input as
// INPUT_<NAME> with the name upper-cased and hyphens preserved.
type inputs struct {
	GitHubToken       string `env:"INPUT_GITHUB-TOKEN"`
	RepoOwner         string `env:"INPUT_REPO-OWNER"`
	RepoName          string `env:"INPUT_REPO-NAME"`
	PRNumber          int    `env:"INPUT_PR-NUMBER"`
	LabelPass         string `env:"INPUT_LABEL-PASS"`
	LabelFail         string `env:"INPUT_LABEL-FAIL"`
	LabelRTT          string `env:"INPUT_LABEL-RTT"`
	FailIfNoQAComment bool   `env:"INPUT_FAIL-ACTION-IF-NO-QACOMMENT"`
	FailIfQAFailed    bool   `env:"INPUT_FAIL-ACTION-IF-QA-FAILED"`
	KeywordsFile      string `env:"INPUT_KEYWORDS-FILE"`
	DryRun            bool   `env:"INPUT_DRY-RUN"`
	LogLevel          string `env:"INPUT_LOG-LEVEL"`

	// Runner-provided fallbacks.
	RunnerToken      string `env:"GITHUB_TOKEN"`
	RunnerRepository string `env:"GITHUB_REPOSITORY"`
	RunnerAPIURL     string `env:"GITHUB_API_URL"`
}

// Config holds the typed invocation inputs.
type Config struct {
	GitHubToken  string
	GitHubAPIURL string // Empty means api.github.com.
	PullRequest  model.PullRequestRef
	Labels       model.LabelConfig
	Policy       model.FailurePolicy
	KeywordsFile string
	DryRun       bool
	LogLevel     string
}

// Overrides are command-line values applied on top of the environment.
// Empty strings and false leave the environment value in place.
type Overrides struct {
	EnvFile      string
	KeywordsFile string
	LogLevel     string
	DryRun       bool
}

// Load parses the environment and validates that everything needed to talk
// to GitHub is present.
func Load(o Overrides) (*Config, error) {
	cfg, err := Parse(o)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads a .env file (if any), then the process environment, and applies
// o. Boolean inputs are parsed here so nothing downstream sees raw strings.
// Parse does not validate; offline commands use it directly.
func Parse(o Overrides) (*Config, error) {
	if err := loadEnvFile(o.EnvFile); err != nil {
		return nil, err
	}

	var in inputs
	if err := env.Parse(&in); err != nil {
		return nil, fmt.Errorf("parsing action inputs: %w", err)
	}

	cfg := &Config{
		GitHubToken:  strings.TrimSpace(in.GitHubToken),
		GitHubAPIURL: strings.TrimSpace(in.RunnerAPIURL),
		PullRequest: model.PullRequestRef{
			Owner:  strings.TrimSpace(in.RepoOwner),
			Repo:   strings.TrimSpace(in.RepoName),
			Number: in.PRNumber,
		},
		Labels: model.LabelConfig{
			Pass: in.LabelPass,
			Fail: in.LabelFail,
			RTT:  in.LabelRTT,
		}.Normalize(),
		Policy: model.FailurePolicy{
			FailIfNoQAComment: in.FailIfNoQAComment,
			FailIfQAFailed:    in.FailIfQAFailed,
		},
		KeywordsFile: strings.TrimSpace(in.KeywordsFile),
		DryRun:       in.DryRun || o.DryRun,
		LogLevel:     strings.TrimSpace(in.LogLevel),
	}

	if cfg.GitHubToken == "" {
		cfg.GitHubToken = strings.TrimSpace(in.RunnerToken)
	}
	if cfg.PullRequest.Owner == "" && cfg.PullRequest.Repo == "" && in.RunnerRepository != "" {
		owner, name, ok := strings.Cut(strings.TrimSpace(in.RunnerRepository), "/")
		if ok {
			cfg.PullRequest.Owner = owner
			cfg.PullRequest.Repo = name
		}
	}
	if o.KeywordsFile != "" {
		cfg.KeywordsFile = o.KeywordsFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks the inputs required to reconcile labels on GitHub.
// A token is optional in dry-run mode, where only public reads happen.
func (c *Config) Validate() error {
	var errs []error
	if c.PullRequest.Owner == "" {
		errs = append(errs, errors.New("INPUT_REPO-OWNER is required"))
	}
	if c.PullRequest.Repo == "" {
		errs = append(errs, errors.New("INPUT_REPO-NAME is required"))
	}
	if c.PullRequest.Number <= 0 {
		errs = append(errs, fmt.Errorf("INPUT_PR-NUMBER must be a positive integer, got %d", c.PullRequest.Number))
	}
	if c.GitHubToken == "" && !c.DryRun {
		errs = append(errs, errors.New("INPUT_GITHUB-TOKEN is required (or set GITHUB_TOKEN)"))
	}
	return errors.Join(errs...)
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing default .env file is not an error.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %q: %w", path, err)
	}
	return nil
}
