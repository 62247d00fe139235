package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(TimestampLayout, value)
	require.NoError(t, err)
	return ts
}

// TestParser_ValidLines tests the happy path of the line grammar
// TestParser_ValidLines 测试行语法的正常路径
func TestParser_ValidLines(t *testing.T) {
	p := NewParser()

	t.Run("Canonical line", func(t *testing.T) {
		rec, ok := p.ParseLine("10.0.0.1: 2024-01-01 10:00:00")
		require.True(t, ok)
		assert.Equal(t, "10.0.0.1", rec.Address)
		assert.Equal(t, mustTime(t, "2024-01-01 10:00:00"), rec.Timestamp)
	})

	t.Run("Whitespace trimmed from both parts", func(t *testing.T) {
		rec, ok := p.ParseLine("  10.0.0.1 :  2024-01-01 10:00:00  ")
		require.True(t, ok)
		assert.Equal(t, "10.0.0.1", rec.Address)
		assert.Equal(t, mustTime(t, "2024-01-01 10:00:00"), rec.Timestamp)
	})

	t.Run("No space after separator", func(t *testing.T) {
		rec, ok := p.ParseLine("a:2024-01-01 10:00:00")
		require.True(t, ok)
		assert.Equal(t, "a", rec.Address)
	})

	t.Run("Address is not validated as IP", func(t *testing.T) {
		rec, ok := p.ParseLine("not-an-ip-at-all: 2024-06-15 23:59:59")
		require.True(t, ok)
		assert.Equal(t, "not-an-ip-at-all", rec.Address)
	})

	t.Run("Empty address accepted", func(t *testing.T) {
		rec, ok := p.ParseLine(": 2024-01-01 00:00:00")
		require.True(t, ok)
		assert.Equal(t, "", rec.Address)
	})
}

// TestParser_RejectedLines tests the rejection paths of the line grammar
// TestParser_RejectedLines 测试行语法的拒绝路径
func TestParser_RejectedLines(t *testing.T) {
	p := NewParser()

	cases := []struct {
		name string
		line string
	}{
		{"No colon", "badline-no-colon"},
		{"Empty line", ""},
		{"Timestamp not matching pattern", "A:notatime"},
		{"Colon in address shifts garbage into timestamp", "10.0.0.1:8080: 2024-01-01 10:00:00"},
		{"Wrong date separator", "a: 2024/01/01 10:00:00"},
		{"Single-digit hour", "a: 2024-01-01 9:00:00"},
		{"Single-digit month", "a: 2024-1-01 10:00:00"},
		{"Invalid calendar date", "a: 2024-02-31 10:00:00"},
		{"Invalid hour", "a: 2024-01-01 25:00:00"},
		{"Non-numeric field", "a: 2024-01-0x 10:00:00"},
		{"Trailing garbage", "a: 2024-01-01 10:00:00 extra"},
		{"Date only", "a: 2024-01-01"},
		{"Timestamp missing entirely", "10.0.0.1:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := p.ParseLine(tc.line)
			assert.False(t, ok, "line %q should be rejected", tc.line)
		})
	}
}

// TestParser_LeapDay tests that real calendar rules apply
// TestParser_LeapDay 测试真实的日历规则
func TestParser_LeapDay(t *testing.T) {
	p := NewParser()

	_, ok := p.ParseLine("a: 2024-02-29 12:00:00")
	assert.True(t, ok, "2024 is a leap year")

	_, ok = p.ParseLine("a: 2023-02-29 12:00:00")
	assert.False(t, ok, "2023 is not a leap year")
}
