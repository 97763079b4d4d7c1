package gradeforge

import (
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	parentheticRe = regexp.MustCompile(`\s*\([^()]*\)`)
	creditRangeRe = regexp.MustCompile(`\s+(?:TO|OR)\s+`)
	zeroDecimalRe = regexp.MustCompile(`(\d+)\.0+\b`)
)

// CollapseSpace trims s and collapses internal runs of whitespace.
func CollapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ReplaceAll(s, "\u00a0", " "), " "))
}

// NormalizeInstructorName strips parenthetical suffixes such as "(P)"
// and collapses whitespace: "Jane   Doe (P)" -> "Jane Doe".
func NormalizeInstructorName(name string) string {
	return CollapseSpace(parentheticRe.ReplaceAllString(name, ""))
}

// instructorKey is the identity used to compare instructor names.
func instructorKey(name string) string {
	return strings.ToLower(NormalizeInstructorName(name))
}

// ParseCredits normalizes a credit-hours line:
// "7.000    OR  8.000 Credit hours" -> "7 TO 8".
func ParseCredits(s string) string {
	s = strings.Replace(s, "Credit hours", "", 1)
	s = zeroDecimalRe.ReplaceAllString(s, "$1")
	return creditRangeRe.ReplaceAllString(CollapseSpace(s), " TO ")
}

// ParsePortalDate converts "Aug 24, 2018" into ISO "2018-08-24".
func ParsePortalDate(s string) (string, error) {
	t, err := time.Parse("Jan 2 2006", CollapseSpace(strings.ReplaceAll(s, ",", "")))
	if err != nil {
		return "", Errorf(EINVALID, "invalid date %q", s)
	}
	return t.Format(time.DateOnly), nil
}
