package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPresetRange(t *testing.T) {
	today := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		preset string
		start  string
		end    string
	}{
		{PresetToday, "2024-03-10", "2024-03-10"},
		{PresetYesterday, "2024-03-09", "2024-03-09"},
		{"Past 2 Days", "2024-03-08", "2024-03-09"},
		{"Past 7 Days", "2024-03-03", "2024-03-09"},
		{"Past 30 Days", "2024-02-09", "2024-03-09"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			start, end, err := PresetRange(tt.preset, today)
			require.NoError(t, err)
			assert.Equal(t, tt.start, start.Format("2006-01-02"))
			assert.Equal(t, tt.end, end.Format("2006-01-02"))

			assert.Equal(t, tt.preset, DetectPreset(start, end, today))
		})
	}

	_, _, err := PresetRange("Past 5 Days", today)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestDetectPresetCustom(t *testing.T) {
	today := day("2024-03-10")

	assert.Equal(t, PresetCustom, DetectPreset(day("2024-03-05"), day("2024-03-09"), today), "5 dias não é um preset")
	assert.Equal(t, PresetCustom, DetectPreset(day("2024-03-01"), day("2024-03-08"), today), "não termina ontem")
}

func TestDatePresets(t *testing.T) {
	assert.Equal(t, []string{
		"Custom", "Today", "Yesterday",
		"Past 2 Days", "Past 3 Days", "Past 7 Days", "Past 14 Days", "Past 30 Days",
	}, DatePresets())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, DaysBetween(day("2024-01-01"), day("2024-01-01")))
	assert.Equal(t, 31, DaysBetween(day("2024-01-01"), day("2024-01-31")))
	assert.Equal(t, 0, DaysBetween(day("2024-01-02"), day("2024-01-01")))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.Format("2006-01-02"))

	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}
