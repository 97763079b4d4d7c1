package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gradeforge"
)

// Ensure ExamExtractor implements gradeforge.ExamExtractor.
var _ gradeforge.ExamExtractor = (*ExamExtractor)(nil)

var (
	sessionCodeRe = regexp.MustCompile(`\(([0-9][A-Z])\)`)
	examDashRe    = regexp.MustCompile(`\s*[–-]\s*`)
	ordinalRe     = regexp.MustCompile(`(th|nd|st|rd)\s*$`)
	meetingDaysRe = regexp.MustCompile(`\s*[MTWRFSU]+\s+(?:-\s+)?`)
	meetingListRe = regexp.MustCompile(`, ?`)
)

// ExamAny marks exam slots that apply to every meeting time.
const ExamAny = "any"

const allSectionsKey = "all sections"

// ExamExtractor decodes final-exam schedule pages.
type ExamExtractor struct {
	// Semester encodes the semester named in the page title.
	Semester gradeforge.SemesterPolicy
}

// NewExamExtractor creates an exam extractor using the default semester policy.
func NewExamExtractor() *ExamExtractor {
	return &ExamExtractor{Semester: gradeforge.DefaultSemesterPolicy}
}

// ExtractExams returns one slot per meeting time listed under each
// accordion heading of doc.
func (e *ExamExtractor) ExtractExams(doc *gradeforge.Document) ([]*gradeforge.ExamSlot, error) {
	d, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}

	title := d.Find("head > title").First().Text()
	heading, _, _ := strings.Cut(title, " - ")
	semester, err := e.Semester.Parse(strings.Replace(heading, "Final Exam Schedule ", "", 1))
	if err != nil {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "%s: title %q: %s", doc.Name, cleanText(title), gradeforge.ErrorMessage(err))
	}

	headers := d.Find("div.accordion-summary > h5")
	bodies := d.Find("div.accordion-details > table > tbody")
	if headers.Length() != bodies.Length() {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "%s: %d accordion headings but %d tables", doc.Name, headers.Length(), bodies.Length())
	}

	var slots []*gradeforge.ExamSlot
	record := 0
	for i := 0; i < headers.Length(); i++ {
		days, err := examDays(headers.Eq(i).Text())
		if err != nil {
			return nil, &gradeforge.RecordError{Document: doc.Name, Record: record, Fields: gradeforge.Fields{"heading": cleanText(headers.Eq(i).Text())}, Err: err}
		}

		rows := bodies.Eq(i).ChildrenFiltered("tr")
		for j := 0; j < rows.Length(); j++ {
			fields := gradeforge.Fields{"semester": semester, "days": days}
			decoded, err := decodeExamRow(rows.Eq(j), semester, days, fields)
			if err != nil {
				return nil, &gradeforge.RecordError{Document: doc.Name, Record: record, Fields: fields, Err: err}
			}
			slots = append(slots, decoded...)
			record++
		}
	}
	return slots, nil
}

// examDays decodes an accordion heading. Headings that name sessions
// instead of weekdays, such as "Spring I (3A) and Spring II (3B)", become
// the comma-joined session codes.
func examDays(heading string) (string, error) {
	days, err := gradeforge.ParseDays(heading)
	if err == nil {
		return days, nil
	}
	var codes []string
	for _, m := range sessionCodeRe.FindAllStringSubmatch(heading, -1) {
		codes = append(codes, m[1])
	}
	if len(codes) == 0 {
		return "", err
	}
	return strings.Join(codes, ","), nil
}

func decodeExamRow(row *goquery.Selection, semester, days string, fields gradeforge.Fields) ([]*gradeforge.ExamSlot, error) {
	cells := row.ChildrenFiltered("td")
	if cells.Length() != 2 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "exam row has %d cells; want 2", cells.Length())
	}
	timeMet := cleanText(cells.Eq(0).Text())
	datetime := cleanText(cells.Eq(1).Text())
	fields["timeMet"], fields["examDatetime"] = timeMet, datetime

	date, examTime, err := ParseExamDatetime(datetime)
	if err != nil {
		return nil, err
	}
	fields["examDate"], fields["examTime"] = date, examTime

	if strings.Contains(strings.ToLower(timeMet), allSectionsKey) {
		if examTime == "" {
			examTime = ExamAny
		}
		return []*gradeforge.ExamSlot{{
			Semester: semester,
			Days:     days,
			TimeMet:  ExamAny,
			ExamDate: date,
			ExamTime: examTime,
		}}, nil
	}

	parts := meetingDaysRe.Split(timeMet, -1)
	var slots []*gradeforge.ExamSlot
	for _, raw := range meetingListRe.Split(parts[len(parts)-1], -1) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		met, err := gradeforge.ParseClock(raw)
		if err != nil {
			return nil, err
		}
		slot := &gradeforge.ExamSlot{
			Semester: semester,
			Days:     days,
			TimeMet:  met,
			ExamDate: date,
			ExamTime: examTime,
		}
		if slot.ExamTime == "" {
			slot.ExamTime = met
		}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "no meeting time in %q", timeMet)
	}
	return slots, nil
}

// ParseExamDatetime decodes the exam column of the schedule into a date
// such as "May 3" and a 24-hour time. The time is empty when the exam is
// held at the regular meeting time. Recognized shapes:
//
//	TBA
//	May 3, Thursday, regular class meeting time
//	Thursday, May 3 - normal class meeting time
//	May. 3, Thursday - 9:00 a.m.
//	Thursday May 3rd - 9:00 a.m.
func ParseExamDatetime(s string) (date, clock string, err error) {
	s = cleanText(s)
	if s == gradeforge.TBA {
		return gradeforge.TBA, gradeforge.TBA, nil
	}

	if strings.Contains(strings.ToLower(s), "regular class meeting time") {
		date, _, _ = strings.Cut(s, ",")
		return cleanExamDate(date), "", nil
	}

	parts := examDashRe.Split(s, -1)
	if len(parts) != 2 {
		return "", "", gradeforge.Errorf(gradeforge.EINVALID, "exam datetime %q is not \"date - time\"", s)
	}
	date, when := parts[0], parts[1]

	switch {
	case strings.Contains(strings.ToLower(when), "normal class meeting time"):
		_, date, _ = strings.Cut(date, ", ")
	case strings.Contains(date, ","):
		date, _, _ = strings.Cut(date, ", ")
		if clock, err = gradeforge.ParseClock(when); err != nil {
			return "", "", err
		}
	default:
		_, date, _ = strings.Cut(date, " ")
		if clock, err = gradeforge.ParseClock(when); err != nil {
			return "", "", err
		}
	}
	return cleanExamDate(date), clock, nil
}

func cleanExamDate(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(ordinalRe.ReplaceAllString(s, ""), ".", ""))
}
