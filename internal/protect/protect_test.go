package protect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultContains(t *testing.T) {
	tests := []struct {
		name      string
		protected bool
	}{
		{"VERCEL", true},
		{"VERCEL_URL", true},
		{"VERCEL_GIT_COMMIT_SHA", true},
		{"TURBO", true},
		{"TURBO_REMOTE_ONLY", true},
		{"TURBO_RUN_SUMMARY", true},
		{"TURBO_CACHE", true},
		{"NX_DAEMON", true},
		{"NX_DAEMON_PORT", false},
		{"vercel_url", false},
		{"MY_VERCEL_TOKEN", false},
		{"API_KEY", false},
		{"", false},
	}

	protected := Default()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.protected, protected.Contains(test.name))
		})
	}
}

func TestWith(t *testing.T) {
	base := Default()
	extended := base.With("DATABASE_URL", "NX_DAEMON")

	assert.True(t, extended.Contains("DATABASE_URL"))
	assert.True(t, extended.Contains("VERCEL_ENV"))
	assert.False(t, base.Contains("DATABASE_URL"), "With must not modify the receiver")
	assert.Len(t, extended.Names, len(base.Names)+1)
}
