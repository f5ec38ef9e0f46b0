// Package schedule finds free one-hour meeting slots in a fixed working day.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Working window for suggestions. End is exclusive.
const (
	WorkStart = 9
	WorkEnd   = 18

	MaxSuggestions = 3

	baseConfidence = 90
	confidenceStep = 5
)

// Fallback is returned when no hour in the working window is free.
var Fallback = Suggestion{
	Time:       "10:00 AM - 11:00 AM",
	Date:       "Day After Tomorrow",
	Confidence: 80,
}

var (
	ErrNoSeparator = errors.New("missing '-' range separator")
	ErrNoColon     = errors.New("missing ':' in start time")
	ErrBadHour     = errors.New("non-numeric hour")
)

// Meeting is an already-scheduled meeting. Time is free text such as
// "10:00 AM - 11:00 AM" and may be empty.
type Meeting struct {
	Time string `json:"time"`
}

// Suggestion is a proposed one-hour slot.
type Suggestion struct {
	Time       string `json:"time"`
	Date       string `json:"date"`
	Confidence int    `json:"confidence"`
}

// ParseResult is the outcome of reading a meeting's start hour.
type ParseResult struct {
	Hour int
	OK   bool
	Err  error
}

func parseFailed(err error) ParseResult {
	return ParseResult{Err: err}
}

// ParseBusyHour extracts the 24-hour start hour from a range like
// "2:30 PM - 3:30 PM". Noon stays 12.
func ParseBusyHour(timeRange string) ParseResult {
	start, _, found := strings.Cut(timeRange, "-")
	if !found {
		return parseFailed(ErrNoSeparator)
	}
	start = strings.TrimSpace(start)

	hourText, _, found := strings.Cut(start, ":")
	if !found {
		return parseFailed(fmt.Errorf("%q: %w", start, ErrNoColon))
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourText))
	if err != nil {
		return parseFailed(fmt.Errorf("%q: %w", hourText, ErrBadHour))
	}
	if strings.Contains(start, "PM") && hour != 12 {
		hour += 12
	}
	return ParseResult{Hour: hour, OK: true}
}

// ParseFailure records a meeting whose time could not be read.
type ParseFailure struct {
	Index int
	Err   error
}

// BusyHours returns the sorted start hours of all meetings that parse,
// along with the meetings that did not. Failed meetings do not occupy any
// hour. Meetings without a time are skipped and not reported.
func BusyHours(meetings []Meeting) ([]int, []ParseFailure) {
	hours := make([]int, 0, len(meetings))
	var failed []ParseFailure
	for i, m := range meetings {
		if m.Time == "" {
			continue
		}
		res := ParseBusyHour(m.Time)
		if !res.OK {
			failed = append(failed, ParseFailure{Index: i, Err: res.Err})
			continue
		}
		hours = append(hours, res.Hour)
	}
	sort.Ints(hours)
	return hours, failed
}

// FindSlots suggests up to MaxSuggestions free hours for tomorrow, or the
// single Fallback when the whole window is taken.
func FindSlots(meetings []Meeting) []Suggestion {
	busy, _ := BusyHours(meetings)
	return SuggestFree(busy)
}

// SuggestFree scans the working window around the given busy hours.
func SuggestFree(busy []int) []Suggestion {
	suggestions := make([]Suggestion, 0, MaxSuggestions)
	for hour := WorkStart; hour < WorkEnd && len(suggestions) < MaxSuggestions; hour++ {
		if collides(hour, busy) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Time:       FormatHour(hour) + " - " + FormatHour(hour+1),
			Date:       "Tomorrow",
			Confidence: baseConfidence - confidenceStep*len(suggestions),
		})
	}

	if len(suggestions) == 0 {
		return []Suggestion{Fallback}
	}
	return suggestions
}

// collides reports whether any busy hour is less than one hour away from
// hour. With whole hours only an exact match collides.
func collides(hour int, busy []int) bool {
	for _, b := range busy {
		d := b - hour
		if d < 0 {
			d = -d
		}
		if d < 1 {
			return true
		}
	}
	return false
}

// FormatHour renders a 24-hour value on the 12-hour clock, e.g. 18 -> "6:00 PM".
func FormatHour(hour int) string {
	display := hour
	if hour > 12 {
		display = hour - 12
	}
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:00 %s", display, meridiem)
}
