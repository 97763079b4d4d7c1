package gradeforge

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Season is the part of the academic year a semester falls in.
type Season string

// Seasons recognized by the portal.
const (
	Fall   Season = "Fall"
	Spring Season = "Spring"
	Summer Season = "Summer"
)

// SemesterPolicy controls how seasons are encoded into 6-digit semester
// codes. The trailing two digits are era-dependent, not calendar months.
type SemesterPolicy struct {
	// EraStartYear is the first year using the 08/01/05 suffixes.
	EraStartYear int `json:"eraStartYear"`

	// MinYear is the earliest year the portal accepts.
	MinYear int `json:"minYear"`

	// PreEraSummerSuffix encodes Summer before EraStartYear.
	// Empty means pre-era Summer terms are not encodable.
	PreEraSummerSuffix string `json:"preEraSummerSuffix"`
}

// DefaultSemesterPolicy is the portal's encoding as currently observed.
var DefaultSemesterPolicy = SemesterPolicy{
	EraStartYear: 2014,
	MinYear:      2013,
}

var (
	sixDigitRe = regexp.MustCompile(`^[0-9]{6}$`)
	twoDigitRe = regexp.MustCompile(`^[0-9]{2}$`)
)

func (p SemesterPolicy) suffix(season Season, year int) string {
	if year >= p.EraStartYear {
		switch season {
		case Fall:
			return "08"
		case Spring:
			return "01"
		case Summer:
			return "05"
		}
		return ""
	}
	switch season {
	case Fall:
		return "41"
	case Spring:
		return "11"
	case Summer:
		return p.PreEraSummerSuffix
	}
	return ""
}

// Valid reports whether code is a semester the portal accepts.
func (p SemesterPolicy) Valid(code string) bool {
	if !sixDigitRe.MatchString(code) {
		return false
	}
	year, _ := strconv.Atoi(code[:4])
	if year < p.MinYear {
		return false
	}
	for _, s := range []Season{Fall, Spring, Summer} {
		if suffix := p.suffix(s, year); suffix != "" && suffix == code[4:] {
			return true
		}
	}
	return false
}

// Encode returns the semester code for a season and four-digit year.
// A season argument that is already a 6-digit code is validated and
// returned as is.
func (p SemesterPolicy) Encode(season string, year int) (string, error) {
	s := strings.ToLower(strings.TrimSpace(season))
	if sixDigitRe.MatchString(s) {
		if p.Valid(s) {
			return s, nil
		}
		return "", Errorf(EINVALID, "%s is the right format but invalid; the year is likely too early or late", s)
	}

	if year < 1000 || year > 9999 {
		return "", Errorf(EINVALID, "expected four digit year; was given %d", year)
	}

	var parsed Season
	switch s {
	case "fall":
		parsed = Fall
	case "spring":
		parsed = Spring
	case "summer":
		parsed = Summer
	default:
		return "", Errorf(EINVALID, "%q is not a valid season", season)
	}

	suffix := p.suffix(parsed, year)
	if suffix == "" {
		return "", Errorf(EINVALID, "%q is not a valid season for year %d", season, year)
	}
	return fmt.Sprintf("%04d%s", year, suffix), nil
}

// Parse encodes free text such as "Fall 2018" or "Summer  2019".
func (p SemesterPolicy) Parse(text string) (string, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	if len(parts) == 1 {
		return p.Encode(parts[0], 0)
	}
	if len(parts) != 2 {
		return "", Errorf(EINVALID, "expected season and year; got %q", text)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", Errorf(EINVALID, "expected season and year; got %q", text)
	}
	return p.Encode(parts[0], year)
}

// EncodeSemester encodes a season and year using DefaultSemesterPolicy.
func EncodeSemester(season string, year int) (string, error) {
	return DefaultSemesterPolicy.Encode(season, year)
}

// SemesterSeason returns the season of a semester code. Only the current
// era's suffixes (08, 01, 05) are decodable.
func SemesterSeason(code string) (Season, error) {
	if !sixDigitRe.MatchString(code) {
		return "", Errorf(EINVALID, "expected 6 digit semester; got %q", code)
	}
	switch code[4:] {
	case "08":
		return Fall, nil
	case "01":
		return Spring, nil
	case "05":
		return Summer, nil
	}
	return "", Errorf(EINVALID, "bad month %s in %s", code[4:], code)
}

// BookstoreTerm converts a semester code into the bookstore's term
// notation, e.g. 201808 -> F18, 201801 -> W18, 201805 -> A18.
func BookstoreTerm(code string) (string, error) {
	season, err := SemesterSeason(code)
	if err != nil {
		return "", err
	}
	prefix := map[Season]string{Fall: "F", Spring: "W", Summer: "A"}[season]
	return prefix + code[2:4], nil
}

// SeasonOf returns the season in progress during month m.
func SeasonOf(m time.Month) Season {
	switch {
	case m < time.May:
		return Spring
	case m < time.August:
		return Summer
	default:
		return Fall
	}
}
