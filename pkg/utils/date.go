package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

const (
	PresetCustom    = "Custom"
	PresetToday     = "Today"
	PresetYesterday = "Yesterday"
)

var ErrUnknownPreset = errors.New("período pré-definido desconhecido")

var pastDays = []int{2, 3, 7, 14, 30}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(dateLayout, strings.TrimSpace(dateStr), time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DatePresets lista os períodos na ordem em que são oferecidos ao usuário
func DatePresets() []string {
	presets := []string{PresetCustom, PresetToday, PresetYesterday}
	for _, n := range pastDays {
		presets = append(presets, pastLabel(n))
	}
	return presets
}

// PresetRange resolve um período pré-definido em relação a today.
// "Past N Days" termina ontem e cobre N dias.
func PresetRange(preset string, today time.Time) (time.Time, time.Time, error) {
	today = truncateDay(today)
	yesterday := today.AddDate(0, 0, -1)

	switch preset {
	case PresetToday:
		return today, today, nil
	case PresetYesterday:
		return yesterday, yesterday, nil
	}

	if n, ok := parsePast(preset); ok {
		return yesterday.AddDate(0, 0, -(n - 1)), yesterday, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}

// DetectPreset faz o caminho inverso de PresetRange; qualquer outro intervalo é Custom
func DetectPreset(start, end, today time.Time) string {
	start, end, today = truncateDay(start), truncateDay(end), truncateDay(today)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case start.Equal(end) && end.Equal(today):
		return PresetToday
	case start.Equal(end) && end.Equal(yesterday):
		return PresetYesterday
	case end.Equal(yesterday):
		days := DaysBetween(start, end)
		for _, n := range pastDays {
			if n == days {
				return pastLabel(n)
			}
		}
	}

	return PresetCustom
}

// DaysBetween conta os dias do intervalo incluindo as duas pontas
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

func pastLabel(n int) string {
	return fmt.Sprintf("Past %d Days", n)
}

func parsePast(preset string) (int, bool) {
	fields := strings.Fields(preset)
	if len(fields) != 3 || fields[0] != "Past" || fields[2] != "Days" {
		return 0, false
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, false
	}

	for _, allowed := range pastDays {
		if allowed == n {
			return n, true
		}
	}
	return 0, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
