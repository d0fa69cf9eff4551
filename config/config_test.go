package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andyle182810/liquidplanner/config"
	"github.com/andyle182810/liquidplanner/httpclient"
	"github.com/andyle182810/liquidplanner/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requiredVars() map[string]string {
	return map[string]string{
		"LP_WORKSPACE_ID": "12345",
		"LP_EMAIL":        "you@example.com",
		"LP_PASSWORD":     "secret",
	}
}

func TestFromMap_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromMap(requiredVars())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "https://app.liquidplanner.com/api", cfg.BaseURL)
	assert.Equal(t, 12345, cfg.WorkspaceID)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.InsecureSkipVerify)
	assert.Zero(t, cfg.MaxAttempts)
	assert.Zero(t, cfg.MaxTotalWait)
	assert.Zero(t, cfg.RateLimit)
	assert.False(t, cfg.Debug)
	assert.Equal(t, httpclient.Credentials{Username: "you@example.com", Password: "secret"}, cfg.Credentials())
}

func TestFromMap_Overrides(t *testing.T) {
	t.Parallel()

	vars := requiredVars()
	vars["LP_BASE_URL"] = "https://staging.example.com/api"
	vars["LP_TIMEOUT"] = "5s"
	vars["LP_INSECURE_SKIP_VERIFY"] = "true"
	vars["LP_MAX_ATTEMPTS"] = "4"
	vars["LP_MAX_TOTAL_WAIT"] = "2m"
	vars["LP_RATE_LIMIT"] = "0.5"
	vars["LP_DEBUG"] = "true"
	vars["LOG_FORMAT"] = "json"

	cfg, err := config.FromMap(vars)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.Equal(t, 4, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.MaxTotalWait)
	assert.InDelta(t, 0.5, cfg.RateLimit, 0)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Len(t, cfg.HTTPOptions(), 6)
}

func TestFromMap_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "missing workspace", key: "LP_WORKSPACE_ID", value: "", field: "LP_WORKSPACE_ID"},
		{name: "missing email", key: "LP_EMAIL", value: "", field: "LP_EMAIL"},
		{name: "missing password", key: "LP_PASSWORD", value: "", field: "LP_PASSWORD"},
		{name: "negative attempts", key: "LP_MAX_ATTEMPTS", value: "-1", field: "LP_MAX_ATTEMPTS"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml", field: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vars := requiredVars()
			if tt.value == "" {
				delete(vars, tt.key)
			} else {
				vars[tt.key] = tt.value
			}

			cfg, err := config.FromMap(vars)
			require.Nil(t, cfg)

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			require.Equal(t, tt.field, validationErrs[0].Field)
		})
	}
}

func TestFromMap_UnparsableValue(t *testing.T) {
	t.Parallel()

	vars := requiredVars()
	vars["LP_TIMEOUT"] = "soon"

	_, err := config.FromMap(vars)
	require.ErrorContains(t, err, "failed to parse config")
}

func TestHTTPOptions_BuildWorkingClient(t *testing.T) {
	t.Parallel()

	vars := requiredVars()
	vars["LP_RATE_LIMIT"] = "100"
	vars["LP_MAX_ATTEMPTS"] = "2"

	cfg, err := config.FromMap(vars)
	require.NoError(t, err)

	opts := cfg.HTTPOptions()
	require.Len(t, opts, 5)
	require.NotNil(t, httpclient.New(cfg.BaseURL, opts...))
}

//nolint:paralleltest // mutates the process environment
func TestNew_LoadsDotenv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	content := "LP_WORKSPACE_ID=77\nLP_EMAIL=dotenv@example.com\nLP_PASSWORD=from-file\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	t.Setenv("LP_PASSWORD", "from-env")
	t.Setenv("LP_WORKSPACE_ID", "")
	t.Setenv("LP_EMAIL", "")
	require.NoError(t, os.Unsetenv("LP_WORKSPACE_ID"))
	require.NoError(t, os.Unsetenv("LP_EMAIL"))

	cfg, err := config.New(filepath.Join(dir, "missing.env"), file)
	require.NoError(t, err)

	assert.Equal(t, 77, cfg.WorkspaceID)
	assert.Equal(t, "dotenv@example.com", cfg.Email)
	assert.Equal(t, "from-env", cfg.Password)
}
