package vercel

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.jetify.com/envsync/internal/logging"
)

type recorded struct {
	args  []string
	stdin string
}

type recordingRunner struct {
	calls []recorded
	err   error
}

func (r *recordingRunner) Run(ctx context.Context, inv Invocation) error {
	call := recorded{args: inv.Args}
	if inv.Stdin != nil {
		b, _ := io.ReadAll(inv.Stdin)
		call.stdin = string(b)
	}
	if inv.Stdout != nil {
		_, _ = io.WriteString(inv.Stdout, "listing\n")
	}
	r.calls = append(r.calls, call)
	return r.err
}

func TestClientArgs(t *testing.T) {
	ctx := context.Background()
	runner := &recordingRunner{}
	client := NewClient(runner, Options{}, nil)

	require.NoError(t, client.Add(ctx, "development", "API_KEY", bytes.NewBufferString("abc")))
	require.NoError(t, client.Remove(ctx, "development", "API_KEY"))
	var out bytes.Buffer
	require.NoError(t, client.List(ctx, "preview", &out))
	require.NoError(t, client.Pull(ctx, "production", ".env.production", false))
	require.NoError(t, client.Pull(ctx, "production", "/tmp/x/.env", true))

	assert.Equal(t, []recorded{
		{args: []string{"env", "add", "API_KEY", "development"}, stdin: "abc"},
		{args: []string{"env", "rm", "API_KEY", "development", "--yes"}},
		{args: []string{"env", "ls", "preview"}},
		{args: []string{"env", "pull", "--environment=production", ".env.production"}},
		{args: []string{"env", "pull", "--environment=production", "/tmp/x/.env", "--yes"}},
	}, runner.calls)
	assert.Equal(t, "listing\n", out.String())
}

func TestClientGlobalOptions(t *testing.T) {
	runner := &recordingRunner{}
	var logs bytes.Buffer
	client := NewClient(
		runner,
		Options{Token: "tok_123", Scope: "acme", Cwd: "apps/web"},
		logging.New(logging.Config{Level: "debug", Output: &logs}),
	)

	require.NoError(t, client.Remove(context.Background(), "development", "OLD"))
	assert.Equal(t,
		[]string{"env", "rm", "OLD", "development", "--yes", "--token", "tok_123", "--scope", "acme", "--cwd", "apps/web"},
		runner.calls[0].args,
	)
	assert.Contains(t, logs.String(), "env rm OLD development --yes")
	assert.NotContains(t, logs.String(), "tok_123")
}

func TestClientPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	client := NewClient(&recordingRunner{err: boom}, Options{}, nil)
	assert.ErrorIs(t, client.Remove(context.Background(), "development", "X"), boom)
}
