package gradeforge

import (
	"regexp"
	"strings"
)

var dayLetters = map[string]string{
	"Monday":    "M",
	"Tuesday":   "T",
	"Wednesday": "W",
	"Thursday":  "R",
	"Friday":    "F",
	"Saturday":  "S",
	"Sunday":    "U",
}

var meetingTimesRe = regexp.MustCompile(`\s+Meetings? Times.*$`)

// ParseDays converts a descriptive phrase into a compact day code:
//
//	"Monday/Wednesday/Friday Meeting Times" -> "MWF"
//	"Monday Only Meeting Times"             -> "M"
//
// Phrases naming a session rather than weekdays are returned unchanged.
func ParseDays(phrase string) (string, error) {
	text := strings.TrimSpace(strings.ReplaceAll(phrase, "\u00a0", " "))
	text = meetingTimesRe.ReplaceAllString(text, "")

	if strings.Contains(text, "Session") {
		return text, nil
	}
	if day, _, ok := strings.Cut(text, " Only"); ok {
		letter, ok := dayLetters[strings.TrimSpace(day)]
		if !ok {
			return "", Errorf(EINVALID, "unknown day %q in %q", day, phrase)
		}
		return letter, nil
	}

	var b strings.Builder
	for _, day := range strings.Split(text, "/") {
		letter, ok := dayLetters[strings.TrimSpace(day)]
		if !ok {
			return "", Errorf(EINVALID, "unknown day %q in %q", day, phrase)
		}
		b.WriteString(letter)
	}
	return b.String(), nil
}
