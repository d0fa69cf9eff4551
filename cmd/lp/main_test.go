package main

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/andyle182810/liquidplanner/config"
	"github.com/andyle182810/liquidplanner/httpclient"
	"github.com/andyle182810/liquidplanner/liquidplanner"
	"github.com/andyle182810/liquidplanner/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliRun struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, server *testutil.MockServer, args ...string) cliRun {
	t.Helper()

	return runCLIWithEnv(t, server, nil, args...)
}

func runCLIWithEnv(t *testing.T, server *testutil.MockServer, extra map[string]string, args ...string) cliRun {
	t.Helper()

	loadConfig := func(...string) (*config.Config, error) {
		vars := map[string]string{
			"LP_BASE_URL":     server.URL + "/api",
			"LP_WORKSPACE_ID": "12345",
			"LP_EMAIL":        "you@example.com",
			"LP_PASSWORD":     "secret",
			"LP_MAX_ATTEMPTS": "1",
			"LOG_LEVEL":       "warn",
		}

		for key, value := range extra {
			vars[key] = value
		}

		return config.FromMap(vars)
	}

	var stdout, stderr bytes.Buffer

	root := newRootCommand(loadConfig, &stdout, &stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())

	return cliRun{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestAccount_PrintsIndentedJSON(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.JSONReply(http.StatusOK, map[string]any{"id": 7}))

	run := runCLI(t, server, "account")

	require.NoError(t, run.err)
	assert.Equal(t, "{\n  \"id\": 7\n}\n", run.stdout)

	requests := server.Requests()
	require.Len(t, requests, 1)
	testutil.AssertRoute(t, requests[0], http.MethodGet, "/api/account")
	testutil.AssertBasicAuth(t, requests[0], "you@example.com", "secret")
}

func TestTasksList_SendsFilters(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.JSONReply(http.StatusOK, []any{}))

	run := runCLI(t, server, "tasks", "list", "--filter", "is_done is false", "--limit", "5")

	require.NoError(t, run.err)
	assert.Equal(t, "[]\n", run.stdout)

	req := server.Requests()[0]
	testutil.AssertRoute(t, req, http.MethodGet, "/api/workspaces/12345/tasks")
	assert.Equal(t, "filter%5B%5D=is_done+is+false&limit=5", req.RawQuery)
}

func TestTasksCreate_SendsEnvelope(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.JSONReply(http.StatusOK, map[string]any{"id": 1}))

	run := runCLI(t, server, "tasks", "create", "--name", "Fix bug", "--parent-id", "3")

	require.NoError(t, run.err)
	testutil.AssertJSONBody(t, server.Requests()[0], `{"task":{"name":"Fix bug","parent_id":3}}`)
}

func TestTrackTime_SendsDecimalHours(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.JSONReply(http.StatusOK, map[string]any{"id": 9}))

	run := runCLI(t, server, "track-time", "9", "--work", "1.25", "--activity-id", "5", "--low", "2")

	require.NoError(t, run.err)

	req := server.Requests()[0]
	testutil.AssertRoute(t, req, http.MethodPost, "/api/workspaces/12345/tasks/9/track_time")
	testutil.AssertJSONBody(t, req, `{"work":1.25,"activity_id":5,"low_effort_remaining":2}`)
}

func TestEstimate_PrintsRawFallback(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.RawReply(http.StatusOK, "ok"))

	run := runCLI(t, server, "estimate", "123456", "--low", "4h", "--high", "8h")

	require.NoError(t, run.err)
	assert.Equal(t, "ok\n", run.stdout)

	req := server.Requests()[0]
	testutil.AssertRoute(t, req, http.MethodPost, "/api/workspaces/12345/treeitems/123456/estimates")
	testutil.AssertJSONBody(t, req, `{"low":"4h","high":"8h"}`)
}

func TestEstimate_RejectsMalformedEffort(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t)

	run := runCLI(t, server, "estimate", "123456", "--low", "soon", "--high", "8h")

	require.ErrorIs(t, run.err, liquidplanner.ErrInvalidInput)
	assert.Zero(t, server.RequestCount())
}

func TestTasksGet_RejectsBadID(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t)

	run := runCLI(t, server, "tasks", "get", "abc")

	require.ErrorIs(t, run.err, liquidplanner.ErrInvalidID)
	assert.Zero(t, server.RequestCount())
}

func TestServiceErrorIsPrintedAndReturned(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.JSONReply(http.StatusNotFound, map[string]any{
		"type":    "Error",
		"error":   "NotFound",
		"message": "no such task",
	}))

	run := runCLI(t, server, "tasks", "delete", "9")

	require.ErrorIs(t, run.err, httpclient.ErrServiceError)
	assert.Contains(t, run.stdout, `"message": "no such task"`)
}

func TestThrottleGuardStopsAfterOneAttempt(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.ThrottleReply("Try again in 10 seconds"))

	run := runCLI(t, server, "members", "list")

	require.ErrorIs(t, run.err, httpclient.ErrThrottled)
	assert.Equal(t, 1, server.RequestCount())
}

func TestMetricsFlag_PrintsCounters(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, testutil.JSONReply(http.StatusOK, []any{}))

	run := runCLI(t, server, "projects", "list", "--metrics")

	require.NoError(t, run.err)
	assert.Contains(t, run.stderr, `liquidplanner_requests_total{code="200",method="GET"} 1`)
}

func TestInsecureSkipVerify_WarnsOnConfiguredLogger(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockTLSServer(t, testutil.JSONReply(http.StatusOK, map[string]any{"id": 7}))

	run := runCLIWithEnv(t, server, map[string]string{
		"LP_INSECURE_SKIP_VERIFY": "true",
		"LOG_FORMAT":              "json",
	}, "account")

	require.NoError(t, run.err)
	assert.Contains(t, run.stderr, `"message":"TLS certificate verification disabled"`)
	assert.Equal(t, 1, server.RequestCount())
}
