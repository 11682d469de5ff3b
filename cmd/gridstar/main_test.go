package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridstar/internal/render"
)

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-env", ""}, args...), &stdout, &stderr, render.NewWithWidth(&stdout, 80, false))
	return code, stdout.String(), stderr.String()
}

func TestRun_Path(t *testing.T) {
	path := writeScenario(t, `
grid:
  matrix: [[0, 0, 0], [0, 1, 0], [0, 0, 0]]
start: {x: 0, y: 1}
goal: {x: 2, y: 1}
search: {diagonal: false}
`)
	code, out, _ := runCLI(t, "-scenario", path, "-render")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "***\nS#G\n...\n0,1\n0,0\n1,0\n2,0\n2,1\ncost 4.00000, 8 expanded\n", out)
}

func TestRun_Unreachable(t *testing.T) {
	path := writeScenario(t, `
grid:
  matrix: [[0, 1, 0]]
start: {x: 0, y: 0}
goal: {x: 2, y: 0}
`)
	code, out, stderr := runCLI(t, "-scenario", path)
	assert.Equal(t, exitUnreachable, code)
	assert.Contains(t, out, "no path from 0,0 to 2,0")
	assert.Contains(t, out, "hint: clearing 1 blocked cell(s)")
	assert.Contains(t, stderr, "path could not be created")
}

func TestRun_Partial(t *testing.T) {
	path := writeScenario(t, `
grid:
  matrix: [[0, 1, 0]]
start: {x: 0, y: 0}
goal: {x: 2, y: 0}
search: {nearest_on_failure: true}
log_level: error
`)
	code, out, _ := runCLI(t, "-scenario", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "0,0\npartial path: goal unreachable, cost 0.00000\n", out)
}

func TestRun_BadInput(t *testing.T) {
	code, _, stderr := runCLI(t, "-scenario", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, exitBadInput, code)
	assert.Contains(t, stderr, "error:")

	code, _, _ = runCLI(t, "-nope")
	assert.Equal(t, exitBadInput, code)

	bad := writeScenario(t, "grid:\n  matrix: [[0, 0], [0]]\n")
	code, _, stderr = runCLI(t, "-scenario", bad)
	assert.Equal(t, exitBadInput, code)
	assert.Contains(t, stderr, "same length")
}

func TestRun_DijkstraFlag(t *testing.T) {
	path := writeScenario(t, `
grid:
  matrix: [[0, 0, 0, 0]]
start: {x: 0, y: 0}
goal: {x: 3, y: 0}
`)
	code, out, _ := runCLI(t, "-scenario", path, "-dijkstra")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "cost 3.00000, 4 expanded")
}

func TestRun_UnreachableBlockedStart(t *testing.T) {
	path := writeScenario(t, `
grid:
  matrix: [[1, 0, 0]]
start: {x: 0, y: 0}
goal: {x: 2, y: 0}
log_level: error
`)
	code, out, _ := runCLI(t, "-scenario", path)
	assert.Equal(t, exitUnreachable, code)
	assert.Equal(t, "no path from 0,0 to 2,0\nhint: clearing 1 blocked cell(s) would connect start and goal\n", out)
}
