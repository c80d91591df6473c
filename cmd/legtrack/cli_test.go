package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/five82/legtrack/internal/catalog"
)

// setup resets the flag globals and points the config at a missing file so
// the developer's own config never leaks into a test.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	configPath = filepath.Join(t.TempDir(), "config.toml")
	prefsPath = ""
	dataPath = ""
	queryJurisdiction = catalog.All
	queryStatus, queryTag, querySearch, queryIn = "", "", "", ""
	queryCount, queryTable = false, false
	tagsTop = false
	dashboardRender, dashboardWidth, dashboardStyle = false, 100, ""
	logsLines, logsLevel = 50, "debug"
	t.Cleanup(func() { now = time.Now })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestQueryByTag(t *testing.T) {
	cmd, out := setup(t)
	queryTag = "frontier_ai"

	require.NoError(t, runQuery(cmd, nil))
	got := out.String()
	assert.Contains(t, got, "Loaded 28 items from bundled")
	assert.Contains(t, got, "Filtered by tag 'frontier_ai': 4 results")
	assert.Contains(t, got, "Total: 4 items")
	assert.Equal(t, 4, strings.Count(got, "📋 "))
}

func TestQueryCombinedCount(t *testing.T) {
	cmd, out := setup(t)
	queryJurisdiction = "state"
	queryStatus = "vetoed"
	queryCount = true

	require.NoError(t, runQuery(cmd, nil))
	got := out.String()
	assert.Contains(t, got, "Filtered by status 'vetoed'")
	assert.Contains(t, got, "Filtered by jurisdiction type 'state': 1 results")
	assert.Contains(t, got, "Total matching items: 1")
	assert.NotContains(t, got, "📋")
}

func TestQueryEnactedIncludesAdopted(t *testing.T) {
	cmd, out := setup(t)
	queryJurisdiction = "international"
	queryStatus = "enacted"
	queryTable = true

	require.NoError(t, runQuery(cmd, nil))
	got := out.String()
	assert.Contains(t, got, "intl-001")
	assert.Contains(t, got, "intl-008")
	assert.Contains(t, got, "Total: 2 items")
}

func TestQueryInJurisdictionName(t *testing.T) {
	cmd, out := setup(t)
	queryIn = "colorado"
	queryTable = true

	require.NoError(t, runQuery(cmd, nil))
	got := out.String()
	assert.Contains(t, got, "Filtered by jurisdiction 'colorado': 1 results")
	assert.Contains(t, got, "state-001")
	assert.Contains(t, got, "Total: 1 items")
}

func TestQueryRejectsUnknownJurisdiction(t *testing.T) {
	cmd, _ := setup(t)
	queryJurisdiction = "municipal"
	err := runQuery(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown jurisdiction")
}

func TestQueryExternalData(t *testing.T) {
	cmd, out := setup(t)
	dataPath = filepath.Join(t.TempDir(), "extra.yaml")
	data := `state:
  - id: st-900
    title: Test Act
    state: Oregon
    status: pending
`
	require.NoError(t, os.WriteFile(dataPath, []byte(data), 0o644))
	queryStatus = "pending"
	queryCount = true

	require.NoError(t, runQuery(cmd, nil))
	assert.Contains(t, out.String(), "Total matching items: 1")
}

func TestTags(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runTags(cmd, nil))
	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Available tags:\n\n  frontier_ai: 4\n"), got)
	all := strings.Count(got, ": ")

	cmd, out = setup(t)
	tagsTop = true
	require.NoError(t, runTags(cmd, nil))
	top := strings.Count(out.String(), ": ")
	assert.Equal(t, catalog.MaxTagOptions, top)
	assert.Greater(t, all, top)
}

func TestDashboardToFile(t *testing.T) {
	cmd, out := setup(t)
	now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	path := filepath.Join(t.TempDir(), "reports", "DASHBOARD.md")

	require.NoError(t, runDashboard(cmd, []string{path}))
	assert.Contains(t, out.String(), "Dashboard written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(data)
	assert.True(t, strings.HasPrefix(md, "# AI Legislation Landscape Dashboard"))
	assert.Contains(t, md, "**Last Updated:** 2025-01-01")
	assert.Contains(t, md, "2026-08-01")
}

func TestDashboardRender(t *testing.T) {
	cmd, out := setup(t)
	dashboardRender = true
	dashboardStyle = "notty"
	dashboardWidth = 80

	require.NoError(t, runDashboard(cmd, nil))
	assert.Contains(t, out.String(), "AI Legislation Landscape Dashboard")
}

func TestValidateBundled(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runValidate(cmd, nil))
	assert.Equal(t, "bundled: 28 records valid\n", out.String())
}

func TestValidateReportsProblems(t *testing.T) {
	cmd, out := setup(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	data := `[
  {"id": "a", "title": "A", "jurisdiction_type": "state", "status": "enacted"},
  {"id": "a", "title": "B", "jurisdiction_type": "state", "status": "enacted"},
  {"id": "c", "jurisdiction_type": "state", "status": "enacted"}
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	err := runValidate(cmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 problems in 3 records")
	assert.Contains(t, out.String(), "duplicate id")
}

func writeLogConfig(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "legtrack.log")
	if len(lines) > 0 {
		require.NoError(t, os.WriteFile(logPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	}
	configPath = filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("log_file = \""+logPath+"\"\n"), 0o644))
	return logPath
}

func TestLogsTail(t *testing.T) {
	cmd, out := setup(t)
	writeLogConfig(t,
		`{"level":"info","ts":"2026-03-01T10:00:00.000Z","msg":"legtrack starting"}`,
		`{"level":"debug","ts":"2026-03-01T10:00:01.000Z","msg":"state updated","visible":4}`,
		`{"level":"warn","ts":"2026-03-01T10:00:02.000Z","msg":"save preferences failed","path":"/tmp/p.toml"}`,
	)
	logsLines = 2

	require.NoError(t, runLogs(cmd, nil))
	assert.Equal(t,
		"2026-03-01T10:00:01.000Z DEBUG state updated visible=4\n"+
			"2026-03-01T10:00:02.000Z WARN save preferences failed path=/tmp/p.toml\n",
		out.String())
}

func TestLogsLevel(t *testing.T) {
	cmd, out := setup(t)
	writeLogConfig(t,
		`{"level":"info","msg":"legtrack starting"}`,
		`{"level":"error","msg":"ui exited"}`,
	)
	logsLevel = "warn"

	require.NoError(t, runLogs(cmd, nil))
	assert.Equal(t, "ERROR ui exited\n", out.String())
}

func TestLogsMissingFile(t *testing.T) {
	cmd, out := setup(t)
	logPath := writeLogConfig(t)

	require.NoError(t, runLogs(cmd, nil))
	assert.Equal(t, "No log entries in "+logPath+"\n", out.String())
}
