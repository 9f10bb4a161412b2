// Package timeparse turns free-text time fragments like "3pm", "15:30"
// or "noon" into concrete future timestamps on the local wall clock.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	digitRun  = regexp.MustCompile(`\d+`)
	nonDigits = regexp.MustCompile(`\D`)
)

// Resolve parses timeText relative to now and returns the next wall-clock
// occurrence of that time. The returned instant is always strictly after
// now: when today's combination has already passed, the date rolls forward
// exactly one day. ok is false only for fully unparseable text.
//
// Resolve is a pure function of its inputs and never fails on odd but
// digit-bearing text; hour values outside 0-23 are not clamped and fall
// through to time.Date normalization.
func Resolve(timeText string, now time.Time) (time.Time, bool) {
	text := strings.ToLower(timeText)
	var hours, minutes int

	if strings.Contains(text, ":") {
		// Format: 3:30 PM or 15:30
		parts := strings.SplitN(text, ":", 2)
		hourDigits := digitRun.FindString(parts[0])
		if hourDigits == "" {
			return time.Time{}, false
		}
		h, err := strconv.Atoi(hourDigits)
		if err != nil {
			return time.Time{}, false
		}
		hours = h

		// Minutes keep only digit characters, so "30 pm" parses as 30.
		m, err := strconv.Atoi(digitsOnly(parts[1]))
		if err != nil {
			return time.Time{}, false
		}
		minutes = m

		hours = adjustMeridiem(text, hours)
	} else if match := digitRun.FindString(text); match != "" {
		// Format: 3 PM, 3PM, 15
		h, err := strconv.Atoi(match)
		if err != nil {
			return time.Time{}, false
		}
		hours = adjustMeridiem(text, h)
	} else if strings.Contains(text, "noon") {
		hours = 12
	} else if strings.Contains(text, "midnight") {
		hours = 0
	} else {
		return time.Time{}, false
	}

	resolved := time.Date(now.Year(), now.Month(), now.Day(), hours, minutes, 0, 0, now.Location())

	// Already past for today: schedule it for tomorrow.
	if !resolved.After(now) {
		resolved = resolved.AddDate(0, 0, 1)
	}

	return resolved, true
}

// adjustMeridiem applies 12-hour clock semantics: "pm" pushes hours
// below 12 into the afternoon, "12 am" is midnight, "12 pm" stays noon.
func adjustMeridiem(text string, hours int) int {
	if strings.Contains(text, "pm") && hours < 12 {
		return hours + 12
	}
	if strings.Contains(text, "am") && hours == 12 {
		return 0
	}
	return hours
}

func digitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
