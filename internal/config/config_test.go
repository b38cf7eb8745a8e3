package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/qalabels/internal/domain/model"
)

// allConfigKeys lists every env var that Parse() reads.
var allConfigKeys = []string{
	"INPUT_GITHUB-TOKEN",
	"INPUT_REPO-OWNER",
	"INPUT_REPO-NAME",
	"INPUT_PR-NUMBER",
	"INPUT_LABEL-PASS",
	"INPUT_LABEL-FAIL",
	"INPUT_LABEL-RTT",
	"INPUT_FAIL-ACTION-IF-NO-QACOMMENT",
	"INPUT_FAIL-ACTION-IF-QA-FAILED",
	"INPUT_KEYWORDS-FILE",
	"INPUT_DRY-RUN",
	"INPUT_LOG-LEVEL",
	"GITHUB_TOKEN",
	"GITHUB_REPOSITORY",
	"GITHUB_API_URL",
}

// isolateConfigEnv saves and unsets all input env vars so tests don't
// inherit values from the host environment (e.g. when run inside Actions).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("INPUT_GITHUB-TOKEN", "ghp_test123")
	t.Setenv("INPUT_REPO-OWNER", "acme")
	t.Setenv("INPUT_REPO-NAME", "widgets")
	t.Setenv("INPUT_PR-NUMBER", "17")
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)
	t.Setenv("INPUT_LABEL-PASS", " qa-pass ")
	t.Setenv("INPUT_LABEL-FAIL", "qa-fail")
	t.Setenv("INPUT_LABEL-RTT", "rtt")
	t.Setenv("INPUT_FAIL-ACTION-IF-NO-QACOMMENT", "true")
	t.Setenv("INPUT_FAIL-ACTION-IF-QA-FAILED", "false")
	t.Setenv("INPUT_LOG-LEVEL", "debug")

	cfg, err := Load(Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.Equal(t, model.PullRequestRef{Owner: "acme", Repo: "widgets", Number: 17}, cfg.PullRequest)
	assert.Equal(t, model.LabelConfig{Pass: "qa-pass", Fail: "qa-fail", RTT: "rtt"}, cfg.Labels)
	assert.Equal(t, model.FailurePolicy{FailIfNoQAComment: true, FailIfQAFailed: false}, cfg.Policy)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.DryRun)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)

	cfg, err := Load(Overrides{})

	require.NoError(t, err)
	assert.Equal(t, model.LabelConfig{}, cfg.Labels)
	assert.Equal(t, model.FailurePolicy{}, cfg.Policy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.KeywordsFile)
}

// TestLoad_FalseStringIsFalse guards against treating any non-empty string
// as true.
func TestLoad_FalseStringIsFalse(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)
	t.Setenv("INPUT_FAIL-ACTION-IF-NO-QACOMMENT", "false")
	t.Setenv("INPUT_FAIL-ACTION-IF-QA-FAILED", "FALSE")

	cfg, err := Load(Overrides{})

	require.NoError(t, err)
	assert.False(t, cfg.Policy.FailIfNoQAComment)
	assert.False(t, cfg.Policy.FailIfQAFailed)
}

func TestLoad_InvalidBoolean(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)
	t.Setenv("INPUT_FAIL-ACTION-IF-QA-FAILED", "sometimes")

	cfg, err := Load(Overrides{})

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_FAIL-ACTION-IF-QA-FAILED")
}

func TestLoad_InvalidPRNumber(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)
	t.Setenv("INPUT_PR-NUMBER", "abc")

	cfg, err := Load(Overrides{})

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_PR-NUMBER")
}

func TestLoad_MissingRequired(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load(Overrides{})

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_REPO-OWNER")
	assert.Contains(t, err.Error(), "INPUT_REPO-NAME")
	assert.Contains(t, err.Error(), "INPUT_PR-NUMBER")
	assert.Contains(t, err.Error(), "INPUT_GITHUB-TOKEN")
}

func TestLoad_RunnerFallbacks(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghs_runner")
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	t.Setenv("INPUT_PR-NUMBER", "5")

	cfg, err := Load(Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "ghs_runner", cfg.GitHubToken)
	assert.Equal(t, "acme", cfg.PullRequest.Owner)
	assert.Equal(t, "widgets", cfg.PullRequest.Repo)
}

func TestLoad_EnterpriseAPIURL(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)
	t.Setenv("GITHUB_API_URL", "https://ghes.example.com/api/v3")

	cfg, err := Load(Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "https://ghes.example.com/api/v3", cfg.GitHubAPIURL)
}

func TestLoad_DryRunWithoutToken(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("INPUT_REPO-OWNER", "acme")
	t.Setenv("INPUT_REPO-NAME", "widgets")
	t.Setenv("INPUT_PR-NUMBER", "17")

	cfg, err := Load(Overrides{DryRun: true})

	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
	assert.Empty(t, cfg.GitHubToken)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)
	t.Setenv("INPUT_LOG-LEVEL", "warn")
	t.Setenv("INPUT_KEYWORDS-FILE", "from-env.toml")

	cfg, err := Load(Overrides{KeywordsFile: "from-flag.yaml", LogLevel: "debug"})

	require.NoError(t, err)
	assert.Equal(t, "from-flag.yaml", cfg.KeywordsFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvFile(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("INPUT_GITHUB-TOKEN", "from-process")

	path := filepath.Join(t.TempDir(), "local.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"INPUT_GITHUB-TOKEN=from-file\nINPUT_REPO-OWNER=acme\nINPUT_REPO-NAME=widgets\nINPUT_PR-NUMBER=9\n",
	), 0o600))

	cfg, err := Load(Overrides{EnvFile: path})

	require.NoError(t, err)
	assert.Equal(t, "from-process", cfg.GitHubToken, "process env wins over the file")
	assert.Equal(t, 9, cfg.PullRequest.Number)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	isolateConfigEnv(t)
	setRequired(t)

	cfg, err := Load(Overrides{EnvFile: filepath.Join(t.TempDir(), "nope.env")})

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.env")
}

func TestParse_SkipsValidation(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("INPUT_LABEL-RTT", "rtt")

	cfg, err := Parse(Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "rtt", cfg.Labels.RTT)
	assert.Error(t, cfg.Validate())
}
