package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFHIRTime(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"2025-06-01T08:30:00Z", true},
		{"2025-06-01T08:30:00+05:30", true},
		{"2025-06-01T08:30:00", true},
		{"2025-06-01", true},
		{"yesterday", false},
		{"", false},
	}

	for _, tc := range cases {
		parsed, ok := ParseFHIRTime(tc.value)
		assert.Equal(t, tc.ok, ok, tc.value)
		if tc.ok {
			require.False(t, parsed.IsZero(), tc.value)
		}
	}
}

func TestLaterFHIRTime(t *testing.T) {
	assert.True(t, LaterFHIRTime("2025-06-02T10:00:00Z", "2025-06-01T10:00:00Z"))
	assert.False(t, LaterFHIRTime("2025-06-01T10:00:00Z", "2025-06-02T10:00:00Z"))

	// Mixed zone offsets compare on the instant, not the string.
	assert.True(t, LaterFHIRTime("2025-06-01T16:00:00+05:30", "2025-06-01T10:00:00Z"))

	// Unparseable values fall back to lexicographic order.
	assert.True(t, LaterFHIRTime("b", "a"))
}
