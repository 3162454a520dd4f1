package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := newRootCommand()
	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootRunsREPL(t *testing.T) {
	stdout, _, err := execute(t, "add 5 3\ndivide 1 0\nexit\n")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Welcome to the Interactive Calculator!")
	assert.Contains(t, stdout, "Result: 8")
	assert.Contains(t, stdout, "Error: Division by zero is undefined.")
	assert.Contains(t, stdout, "Exiting the calculator. Goodbye!")
}

func TestHistoryFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")

	stdout, _, err := execute(t, "multiply 2 3\nsave\nexit\n", "--history-file", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "History saved to "+path+".")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"operand1": 2, "operand2": 3, "operation": "Multiplication"}]`, string(data))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "from-config.json")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("history_file: "+historyPath+"\nlog_level: debug\n"), 0o644))

	stdout, stderr, err := execute(t, "add 1 1\nsave\nexit\n", "--config", configPath)

	require.NoError(t, err)
	assert.Contains(t, stdout, "History saved to "+historyPath+".")
	assert.Contains(t, stderr, "Executing command")
}

func TestFlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "from-flag.json")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("history_file: "+filepath.Join(dir, "from-config.json")+"\n"), 0o644))

	stdout, _, err := execute(t, "add 1 1\nsave\nexit\n", "--config", configPath, "--history-file", flagPath)

	require.NoError(t, err)
	assert.Contains(t, stdout, "History saved to "+flagPath+".")
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := execute(t, "", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, project.Version)
}
