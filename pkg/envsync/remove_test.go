package envsync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.jetify.com/envsync/internal/protect"
)

const pulledEnv = `# Created by Vercel CLI
API_KEY="abc"
DB_URL="postgres://x"
NX_DAEMON="false"
TURBO_CACHE="remote:rw"
TURBO_REMOTE_ONLY="true"
VERCEL="1"
VERCEL_URL="app.vercel.app"
`

func TestRemoveAllSkipsProtected(t *testing.T) {
	f := newFixture(t)
	f.client.pulled = pulledEnv

	require.NoError(t, f.envsync.RemoveAll(context.Background(), protect.Default()))

	removed := []string{}
	for _, c := range f.client.ops("rm") {
		assert.Equal(t, "development", c.env)
		removed = append(removed, c.name)
	}
	assert.Equal(t, []string{"API_KEY", "DB_URL"}, removed)
	for _, name := range []string{"NX_DAEMON", "TURBO_CACHE", "TURBO_REMOTE_ONLY", "VERCEL", "VERCEL_URL"} {
		assert.Contains(t, f.stderr.String(), "Skipping "+name+"\n")
	}
	assert.NotContains(t, f.stderr.String(), "app.vercel.app", "values must not be printed")
	f.assertNoScratchLeft(t)
}

func TestRemoveAllNeverRemovesProtected(t *testing.T) {
	f := newFixture(t)
	f.client.pulled = pulledEnv
	protected := protect.Default().With("DB_URL")

	require.NoError(t, f.envsync.RemoveAll(context.Background(), protected))

	for _, c := range f.client.ops("rm") {
		assert.False(t, protected.Contains(c.name), "removed protected %s", c.name)
	}
	assert.Len(t, f.client.ops("rm"), 1)
}

func TestRemoveAllPullsIntoScratch(t *testing.T) {
	f := newFixture(t)
	f.client.pulled = "A=\"1\"\n"

	require.NoError(t, f.envsync.RemoveAll(context.Background(), protect.Default()))

	pulls := f.client.ops("pull")
	require.Len(t, pulls, 1)
	assert.Contains(t, pulls[0].name, f.scratchDir)
	assert.NoFileExists(t, pulls[0].name)
	f.assertNoScratchLeft(t)
}

func TestRemoveAllPullFailure(t *testing.T) {
	f := newFixture(t)
	f.client.failPull = true

	err := f.envsync.RemoveAll(context.Background(), protect.Default())
	assert.ErrorContains(t, err, "failed to pull environment development")
	assert.Empty(t, f.client.ops("rm"))
	f.assertNoScratchLeft(t)
}

func TestRemoveAllNothingToRemove(t *testing.T) {
	f := newFixture(t)
	f.client.pulled = "VERCEL=\"1\"\n"

	require.NoError(t, f.envsync.RemoveAll(context.Background(), protect.Default()))
	assert.Empty(t, f.client.ops("rm"))
	assert.Contains(t, f.stderr.String(), "No environment variables to remove")
}

func TestRemoveAllContinuesAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.client.pulled = "A=\"1\"\nB=\"2\"\nC=\"3\"\n"
	f.client.failRemove = map[string]bool{"A": true}

	require.NoError(t, f.envsync.RemoveAll(context.Background(), protect.Default()))
	assert.Len(t, f.client.ops("rm"), 3)
	assert.Contains(t, f.stderr.String(), "Error removing A from environment development")
	assert.Contains(t, f.stderr.String(), "[DONE] Removed environment variables 'B', 'C' from environment: development")
}

func TestRemoveByName(t *testing.T) {
	f := newFixture(t)
	f.client.failRemove = map[string]bool{"MISSING": true}

	require.NoError(t, f.envsync.Remove(context.Background(), "VERCEL_URL", "MISSING", "API_KEY"))

	assert.Equal(t, []call{
		{op: "rm", env: "development", name: "VERCEL_URL"},
		{op: "rm", env: "development", name: "MISSING"},
		{op: "rm", env: "development", name: "API_KEY"},
	}, f.client.calls)
	assert.Contains(t, f.stderr.String(), "Error removing MISSING")
}

func TestRemoveByNameStrict(t *testing.T) {
	f := newFixture(t)
	f.envsync.Strict = true
	f.client.failRemove = map[string]bool{"MISSING": true}

	err := f.envsync.Remove(context.Background(), "MISSING", "OTHER")
	assert.ErrorContains(t, err, "failed to remove MISSING")
	assert.Len(t, f.client.ops("rm"), 2)
}

func TestRemoveNoNames(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.envsync.Remove(context.Background()))
	assert.Empty(t, f.client.calls)
}
