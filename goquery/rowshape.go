package goquery

import (
	"strings"

	"github.com/fwojciec/gradeforge"
)

// RowShape classifies the meeting row of a section body.
type RowShape int

// Meeting row shapes, selected by token count.
const (
	// ShapeIndependentStudy rows carry no meeting pattern at all.
	ShapeIndependentStudy RowShape = iota
	// ShapeNominal rows carry exactly one token per column.
	ShapeNominal
	// ShapeMultiInstructor rows spread the instructor column over
	// several tokens.
	ShapeMultiInstructor
	// ShapeNoInstructor rows leave the instructor column empty.
	ShapeNoInstructor
)

func (s RowShape) String() string {
	switch s {
	case ShapeIndependentStudy:
		return "independent-study"
	case ShapeNominal:
		return "nominal"
	case ShapeMultiInstructor:
		return "multi-instructor"
	case ShapeNoInstructor:
		return "no-instructor"
	}
	return "unknown"
}

// NominalTokens is the token count of a meeting row with a single
// instructor node: type, times, days, location, dates, schedule type and
// instructor.
const NominalTokens = 7

// Meeting is a decoded meeting row. Values are raw portal text.
type Meeting struct {
	Times       string
	Days        string
	Location    string
	Dates       string
	Instructors string
}

var meetingDecoders = map[RowShape]func(tokens []string) Meeting{
	ShapeIndependentStudy: func([]string) Meeting {
		return Meeting{}
	},
	ShapeNominal: func(tokens []string) Meeting {
		return Meeting{
			Times:       tokens[1],
			Days:        tokens[2],
			Location:    tokens[3],
			Dates:       tokens[4],
			Instructors: tokens[6],
		}
	},
	ShapeMultiInstructor: func(tokens []string) Meeting {
		return Meeting{
			Times:       tokens[1],
			Days:        tokens[2],
			Location:    tokens[3],
			Dates:       tokens[4],
			Instructors: strings.Join(tokens[NominalTokens-1:], ""),
		}
	},
	ShapeNoInstructor: func(tokens []string) Meeting {
		return Meeting{
			Times:    tokens[1],
			Days:     tokens[2],
			Location: tokens[3],
			Dates:    tokens[4],
		}
	},
}

// ClassifyRow selects the shape of a meeting row from its token count.
// Returns ESTRUCTURE for counts that match no shape.
func ClassifyRow(tokens []string) (RowShape, error) {
	switch n := len(tokens); {
	case n == 0:
		return ShapeIndependentStudy, nil
	case n == NominalTokens-1:
		return ShapeNoInstructor, nil
	case n == NominalTokens:
		return ShapeNominal, nil
	case n > NominalTokens:
		return ShapeMultiInstructor, nil
	default:
		return 0, gradeforge.Errorf(gradeforge.ESTRUCTURE,
			"meeting row has %d tokens; want 0 or at least %d", n, NominalTokens-1)
	}
}

// DecodeMeeting classifies tokens and decodes them with the matching
// shape decoder. Decoded values are whitespace-normalized.
func DecodeMeeting(tokens []string) (RowShape, Meeting, error) {
	shape, err := ClassifyRow(tokens)
	if err != nil {
		return 0, Meeting{}, err
	}
	m := meetingDecoders[shape](tokens)
	m.Times = cleanText(m.Times)
	m.Days = cleanText(m.Days)
	m.Location = cleanText(m.Location)
	m.Dates = cleanText(m.Dates)
	m.Instructors = cleanText(m.Instructors)
	return shape, m, nil
}
