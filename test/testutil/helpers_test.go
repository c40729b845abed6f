package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{name: "valid RFC3339", dateStr: "2026-08-30T10:00:00Z"},
		{name: "valid RFC3339 with offset", dateStr: "2026-08-30T10:00:00+03:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
		})
	}
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{name: "valid date", dateStr: "2026-08-30", wantYear: 2026, wantMonth: time.August, wantDay: 30},
		{name: "leap year date", dateStr: "2024-02-29", wantYear: 2024, wantMonth: time.February, wantDay: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestPointerHelpers(t *testing.T) {
	strVal := Ptr("refundable")
	require.NotNil(t, strVal)
	assert.Equal(t, "refundable", *strVal)

	minPrice := FloatPtr(100)
	maxPrice := FloatPtr(350)
	require.NotNil(t, minPrice)
	require.NotNil(t, maxPrice)
	assert.Equal(t, 100.0, *minPrice)
	assert.Equal(t, 350.0, *maxPrice)

	stops := IntPtr(0)
	require.NotNil(t, stops)
	assert.Equal(t, 0, *stops)
}

func TestStringSlice(t *testing.T) {
	airlines := StringSlice("Singapore Airlines", "Emirates")
	assert.Len(t, airlines, 2)
	assert.Contains(t, airlines, "Emirates")

	assert.Empty(t, StringSlice())
}

func TestLoadSeedJSON(t *testing.T) {
	tests := []struct {
		name          string
		filename      string
		shouldContain string
	}{
		{
			name:          "flight inventory",
			filename:      "flights.json",
			shouldContain: "Singapore Airlines",
		},
		{
			name:          "package catalogue",
			filename:      "packages.json",
			shouldContain: "Bali Adventure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := LoadSeedJSON(t, tt.filename)
			assert.NotEmpty(t, data)
			assert.Contains(t, string(data), tt.shouldContain)
		})
	}
}
