package gradeforge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// minuteRe matches the part after the colon: minutes and an optional
// am/pm marker written as "am", "a.m", "a.m." or "a. m.".
var minuteRe = regexp.MustCompile(`(?i)^\s*(\d{1,2})\s*(?:([ap])\s*\.?\s*m\s*\.?)?\s*$`)

// ParseClock decodes a clock time such as "1:00 a.m", "12:00 pm" or "14:00"
// into zero-padded 24-hour "HH:MM". The TBA sentinel is returned unchanged.
//
// Using an am/pm marker with an hour that is already in 24-hour form
// (hour > 12 or hour == 0) is rejected rather than guessed at.
func ParseClock(s string) (string, error) {
	raw := s
	s = strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))

	if strings.EqualFold(s, TBA) {
		return TBA, nil
	}

	hourText, rest, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(rest, ":") {
		return "", Errorf(EINVALID, "invalid time %q", raw)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourText))
	if err != nil || hour < 0 || hour > 24 {
		return "", Errorf(EINVALID, "invalid time %q: hour out of range", raw)
	}

	m := minuteRe.FindStringSubmatch(rest)
	if m == nil {
		return "", Errorf(EINVALID, "invalid time %q", raw)
	}
	minute, _ := strconv.Atoi(m[1])
	if minute > 59 {
		return "", Errorf(EINVALID, "invalid time %q: minute out of range", raw)
	}

	switch marker := strings.ToLower(m[2]); marker {
	case "":
	case "a", "p":
		if hour > 12 || hour == 0 {
			return "", Errorf(EINVALID, "conflicting time system used in %q", raw)
		}
		if marker == "a" && hour == 12 {
			hour = 0
		} else if marker == "p" && hour != 12 {
			hour += 12
		}
	}

	return fmt.Sprintf("%02d:%02d", hour%24, minute), nil
}
