package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("ENVSYNC_TEST_GET", "")
	assert.Equal(t, "fallback", Get("ENVSYNC_TEST_GET", "fallback"))

	t.Setenv("ENVSYNC_TEST_GET", "value")
	assert.Equal(t, "value", Get("ENVSYNC_TEST_GET", "fallback"))
}

func TestBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"yes", false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Setenv("ENVSYNC_TEST_BOOL", test.input)
			assert.Equal(t, test.expected, Bool("ENVSYNC_TEST_BOOL"))
		})
	}
}

func TestList(t *testing.T) {
	t.Setenv("ENVSYNC_TEST_LIST", " A, ,B ,C,")
	assert.Equal(t, []string{"A", "B", "C"}, List("ENVSYNC_TEST_LIST"))

	t.Setenv("ENVSYNC_TEST_LIST", "")
	assert.Empty(t, List("ENVSYNC_TEST_LIST"))
}
