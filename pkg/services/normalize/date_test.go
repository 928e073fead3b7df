package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		display  string
		valid    bool
		expected time.Time
	}{
		{
			name:     "iso date",
			raw:      "2025-12-01",
			display:  "01/12/2025",
			valid:    true,
			expected: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "iso date with time suffix",
			raw:      "2025-12-01 00:00:00",
			display:  "01/12/2025",
			valid:    true,
			expected: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "brazilian date",
			raw:      "01/12/2025",
			display:  "01/12/2025",
			valid:    true,
			expected: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "single digit day and month",
			raw:      "2025-3-7",
			display:  "07/03/2025",
			valid:    true,
			expected: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{name: "empty", raw: "", display: "", valid: false},
		{name: "garbage", raw: "next tuesday", display: "next tuesday", valid: false},
		{name: "bad iso", raw: "2025-13-45", display: "2025-13-45", valid: false},
		{name: "no separators", raw: "20251201", display: "20251201", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDate(tt.raw)
			assert.Equal(t, tt.display, d.Display)
			assert.Equal(t, tt.valid, d.Valid)
			if tt.valid {
				assert.True(t, d.Time.Equal(tt.expected))
			}
		})
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	// The same calendar date in both source shapes normalizes to one
	// display string.
	iso := ParseDate("2025-12-07")
	br := ParseDate("07/12/2025")

	assert.True(t, iso.Valid)
	assert.True(t, br.Valid)
	assert.Equal(t, iso.Display, br.Display)
	assert.True(t, iso.Time.Equal(br.Time))
}
