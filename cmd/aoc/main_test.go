package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_UnknownDay(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--day", "99", "--part", "1")
	assert.NotEqual(t, 0, code)
	assert.Contains(t, stderr, "unknown day")
}

func TestRun_UnknownPart(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-n", "1", "-p", "3")
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr, "unknown part")
}

func TestRun_MissingSelectors(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--part", "1")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "--day is required")

	code, _, _ = runCLI(t, "", "--bogus")
	assert.Equal(t, exitUsage, code)
}

func TestRun_BadLogLevel(t *testing.T) {
	code, stdout, stderr := runCLI(t, "3,4,3,1,2\n", "-n", "6", "-p", "1", "-i", "-", "--log-level", "chatty")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "bad log level")
	assert.Empty(t, stdout)
}

func TestRun_Help(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "--input-file")
}

func TestRun_Stdin(t *testing.T) {
	code, _, stderr := runCLI(t, "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n",
		"-n", "1", "-p", "2", "-i", "-")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stderr, "answer=5")
}

func TestRun_DefaultInputDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day6.input"), []byte("3,4,3,1,2\n"), 0o600))

	code, _, stderr := runCLI(t, "", "-n", "6", "-p", "1", "--input-dir", dir)
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stderr, "answer=5934")
	assert.Contains(t, stderr, "day=6")
}

func TestRun_MissingInput(t *testing.T) {
	code, _, stderr := runCLI(t, "", "-n", "6", "-p", "1", "--input-dir", t.TempDir())
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr, "cannot open input")
}

func TestRun_RenderedRows(t *testing.T) {
	in := "0,0\n4,0\n0,2\n4,2\n\nfold along x=2\n"
	code, stdout, stderr := runCLI(t, in, "-n", "13", "-p", "2", "-i", "-")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "#\n.\n#\n", stdout)
	assert.Contains(t, stderr, "answer=2")
}

func TestRun_SolverError(t *testing.T) {
	code, _, stderr := runCLI(t, "D2FE28\n", "-n", "16", "-p", "1", "-i", "-", "--log-level", "disabled")
	assert.Equal(t, exitFailed, code)
	assert.Empty(t, stderr)
}
