package vercel

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVercel writes a shell script that records its arguments and stdin.
func fakeVercel(t *testing.T, body string) (bin, logPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	dir := t.TempDir()
	logPath = filepath.Join(dir, "calls.log")
	bin = filepath.Join(dir, "vercel")
	script := "#!/bin/sh\n" +
		"echo \"$@\" >> '" + logPath + "'\n" +
		body + "\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))
	return bin, logPath
}

func TestExecRunner(t *testing.T) {
	bin, logPath := fakeVercel(t, "cat >> "+"\"$(dirname \"$0\")/stdin.log\"\necho listed")
	runner := &ExecRunner{Bin: bin}

	var out bytes.Buffer
	err := runner.Run(context.Background(), Invocation{
		Args:   []string{"env", "add", "API_KEY", "development"},
		Stdin:  strings.NewReader("abc"),
		Stdout: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "listed\n", out.String())

	calls, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "env add API_KEY development\n", string(calls))

	stdin, err := os.ReadFile(filepath.Join(filepath.Dir(bin), "stdin.log"))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(stdin))
}

func TestExecRunnerError(t *testing.T) {
	bin, _ := fakeVercel(t, "echo 'Vercel CLI 33.0.0' >&2\necho 'Error: Environment Variable \"X\" was not found.' >&2\nexit 1")
	var stderr bytes.Buffer
	runner := &ExecRunner{Bin: bin, Stderr: &stderr}

	err := runner.Run(context.Background(), Invocation{
		Args: []string{"env", "rm", "X", "development", "--yes", "--token", "tok_123"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Error: Environment Variable "X" was not found.`)
	assert.Contains(t, err.Error(), "--token ***")
	assert.NotContains(t, err.Error(), "tok_123")
	assert.Contains(t, stderr.String(), "Vercel CLI 33.0.0")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	runner := &ExecRunner{Bin: filepath.Join(t.TempDir(), "does-not-exist")}
	err := runner.Run(context.Background(), Invocation{Args: []string{"env", "ls", "development"}})
	assert.Error(t, err)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "", lastLine(""))
	assert.Equal(t, "b", lastLine("a\nb\n\n"))
}
