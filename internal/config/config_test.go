package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.EnvVars.Port)
	assert.Equal(t, DefaultMealDBBaseURL, cfg.EnvVars.MealDBBaseURL)
	assert.Equal(t, 10*time.Second, cfg.EnvVars.UpstreamTimeout)
	assert.Equal(t, 8, cfg.EnvVars.DetailConcurrency)
	assert.Equal(t, []string{"*"}, cfg.EnvVars.AllowedOrigins)
	assert.Empty(t, cfg.EnvVars.DatabaseUrl)
	assert.NoError(t, cfg.CheckConfigEnvFields())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "5001")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000,https://pantrychef.app")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.EnvVars.Port)
	assert.Equal(t, 3*time.Second, cfg.EnvVars.UpstreamTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://pantrychef.app"}, cfg.EnvVars.AllowedOrigins)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DETAIL_CONCURRENCY=3\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("DETAIL_CONCURRENCY") })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.EnvVars.DetailConcurrency)
}

func TestCheckConfigEnvFields_MissingRequired(t *testing.T) {
	cfg := &Config{EnvVars: EnvVars{MealDBBaseURL: DefaultMealDBBaseURL}}

	err := cfg.CheckConfigEnvFields()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$Port must be set")
}

func TestCheckConfigEnvFields_ZeroRateLimitsDisable(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UPSTREAM_RPS", "0")
	t.Setenv("RATE_LIMIT_RPS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Zero(t, cfg.EnvVars.UpstreamRPS)
	assert.Zero(t, cfg.EnvVars.RateLimitRPS)
	assert.NoError(t, cfg.CheckConfigEnvFields())
}

func TestCheckConfigEnvFields_BadURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MEALDB_BASE_URL", "not a url")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.ErrorContains(t, cfg.CheckConfigEnvFields(), "not a valid URL")
}

func TestLoadSearchOptions_MissingFileUsesDefaults(t *testing.T) {
	opts, err := LoadSearchOptions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSearchOptions(), opts)
}

func TestLoadSearchOptions_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cuisines: [Greek, Thai]\nmax_time: {min: 10, max: 105, step: 5, default: 30}\n"), 0o600))

	opts, err := LoadSearchOptions(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Greek", "Thai"}, opts.Cuisines)
	assert.Equal(t, TimeOptions{Min: 10, Max: 105, Step: 5, Default: 30}, opts.MaxTime)
}

func TestLoadSearchOptions_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_time: {step: 0}\n"), 0o600))

	_, err := LoadSearchOptions(path)
	assert.Error(t, err)
}
