package testutil

import (
	"os"
	"strconv"
	"testing"

	"github.com/andyle182810/liquidplanner/httpclient"
)

func SkipIfShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping test in short mode")
	}
}

func RequireEnv(t *testing.T, key string) string {
	t.Helper()

	value := os.Getenv(key)

	if value == "" {
		t.Skipf("Environment variable %s is required but not set", key)
	}

	return value
}

// LiveAccount reads a real LiquidPlanner account from LP_LIVE_WORKSPACE_ID,
// LP_LIVE_EMAIL and LP_LIVE_PASSWORD, skipping the test when any is unset.
func LiveAccount(t *testing.T) (int, httpclient.Credentials) {
	t.Helper()

	SkipIfShort(t)

	rawID := RequireEnv(t, "LP_LIVE_WORKSPACE_ID")

	workspaceID, err := strconv.Atoi(rawID)
	if err != nil {
		t.Fatalf("LP_LIVE_WORKSPACE_ID must be a number, got %q", rawID)
	}

	return workspaceID, httpclient.Credentials{
		Username: RequireEnv(t, "LP_LIVE_EMAIL"),
		Password: RequireEnv(t, "LP_LIVE_PASSWORD"),
	}
}
