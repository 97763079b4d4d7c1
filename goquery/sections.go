package goquery

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gradeforge"
)

// Ensure SectionExtractor implements gradeforge.SectionExtractor.
var _ gradeforge.SectionExtractor = (*SectionExtractor)(nil)

var (
	titleDelimRe = regexp.MustCompile(`\W-\W`)
	nonWordRe    = regexp.MustCompile(`\W+`)
)

// sectionDetailTokens is the number of labelled body fields without
// attributes: semester, registration window, level, campus, schedule
// type, instructional method and credits.
const sectionDetailTokens = 7

// SectionExtractor decodes course-section listing pages.
type SectionExtractor struct{}

// NewSectionExtractor creates a new section extractor.
func NewSectionExtractor() *SectionExtractor {
	return &SectionExtractor{}
}

// ExtractSections returns one section per header/body row pair of the
// first full-width data table. The first two rows of that table are page
// captions and are skipped.
func (e *SectionExtractor) ExtractSections(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Section, error) {
	d, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}

	rows := listingRows(d.Find(`table.datadisplaytable[width="100%"]`).First())
	if rows.Length() <= 2 {
		return nil, nil
	}
	rows = rows.Slice(2, goquery.ToEnd)
	if err := checkAlternation(doc.Name, rows); err != nil {
		return nil, err
	}

	sections := make([]*gradeforge.Section, 0, rows.Length()/2)
	for i := 0; i < rows.Length(); i += 2 {
		fields := gradeforge.Fields{}
		s, err := decodeSection(ectx, rows.Eq(i), rows.Eq(i+1), fields)
		if err != nil {
			return nil, &gradeforge.RecordError{Document: doc.Name, Record: i / 2, Fields: fields, Err: err}
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func decodeSection(ectx *gradeforge.ExtractionContext, header, body *goquery.Selection, fields gradeforge.Fields) (*gradeforge.Section, error) {
	title := header.ChildrenFiltered("th").First().ChildrenFiltered("a").First().Text()
	fields["header"] = cleanText(title)

	// Titles may contain the delimiter, so decoding anchors on the last
	// three tokens.
	parts := titleDelimRe.Split(title, -1)
	if len(parts) < 3 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "section title %q has %d delimited tokens; want at least 3", cleanText(title), len(parts))
	}
	parts = parts[len(parts)-3:]
	s := &gradeforge.Section{
		UID:     cleanText(parts[0]),
		Section: cleanText(parts[2]),
	}
	id := nonWordRe.Split(strings.TrimSpace(parts[1]), -1)
	if len(id) != 2 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "course id %q is not \"DEPT CODE\"", parts[1])
	}
	s.Department, s.Code = id[0], id[1]
	fields["uid"], fields["department"], fields["code"], fields["section"] = s.UID, s.Department, s.Code, s.Section

	main := body.ChildrenFiltered("td").First()
	if main.Length() == 0 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "section body has no cell")
	}

	details := spanTails(main.Get(0))
	fields["details"] = strings.Join(details, " | ")
	if len(details) < sectionDetailTokens {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "section body has %d labelled fields; want at least %d", len(details), sectionDetailTokens)
	}

	var term gradeforge.Term
	semester, err := ectx.Policy.Semester.Parse(details[0])
	if err != nil {
		return nil, err
	}
	term.Semester = semester
	fields["semester"] = semester

	start, end, ok := strings.Cut(details[1], " to ")
	if !ok {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "registration window %q is not \"X to Y\"", details[1])
	}
	if term.RegistrationStart, err = gradeforge.ParsePortalDate(start); err != nil {
		return nil, err
	}
	if term.RegistrationEnd, err = gradeforge.ParsePortalDate(end); err != nil {
		return nil, err
	}

	if len(details) == sectionDetailTokens+1 {
		s.Attributes = cleanText(details[3])
	}
	n := len(details)
	s.Campus = cleanText(strings.Replace(strings.Replace(details[n-4], "USC ", "", 1), " Campus", "", 1))
	s.Type = cleanText(strings.Replace(details[n-3], " Schedule Type", "", 1))
	s.Method = cleanText(strings.Replace(details[n-2], " Instructional Method", "", 1))
	fields["campus"], fields["type"], fields["method"] = s.Campus, s.Type, s.Method

	if href := syllabusHref(main); href != "" {
		s.Syllabus = gradeforge.AbsoluteLink(ectx.Policy.BaseURL, href)
	}

	inner := main.ChildrenFiltered("table").Find("tr")
	if inner.Length() > 1 {
		if err := decodeMeetingRow(ectx, inner.Eq(1), s, &term, fields); err != nil {
			return nil, err
		}
	}

	s.Term = ectx.TermID(term)
	fields["term"] = strconv.Itoa(s.Term)
	return s, nil
}

// syllabusHref returns the third link of the body cell, looking at the
// cell itself first and then at its b and p children.
func syllabusHref(main *goquery.Selection) string {
	for _, sel := range append([]*goquery.Selection{main}, eachSelection(main.ChildrenFiltered("b, p"))...) {
		if href, ok := sel.ChildrenFiltered("a").Eq(2).Attr("href"); ok {
			return href
		}
	}
	return ""
}

func eachSelection(sel *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

func decodeMeetingRow(ectx *gradeforge.ExtractionContext, row *goquery.Selection, s *gradeforge.Section, term *gradeforge.Term, fields gradeforge.Fields) error {
	shape, m, err := DecodeMeeting(textNodes(row.ChildrenFiltered("td")))
	if err != nil {
		return err
	}
	fields["shape"] = shape.String()
	if shape == ShapeIndependentStudy {
		return nil
	}

	s.Days, s.Location = m.Days, m.Location
	fields["days"], fields["location"] = m.Days, m.Location

	if strings.EqualFold(m.Times, gradeforge.TBA) {
		s.StartTime, s.EndTime = gradeforge.TBA, gradeforge.TBA
	} else {
		start, end, ok := strings.Cut(m.Times, " - ")
		if !ok {
			return gradeforge.Errorf(gradeforge.EINVALID, "meeting time %q is not a range", m.Times)
		}
		if s.StartTime, err = gradeforge.ParseClock(start); err != nil {
			return err
		}
		if s.EndTime, err = gradeforge.ParseClock(end); err != nil {
			return err
		}
	}
	fields["startTime"], fields["endTime"] = s.StartTime, s.EndTime

	start, end, ok := strings.Cut(m.Dates, " - ")
	if !ok {
		return gradeforge.Errorf(gradeforge.EINVALID, "meeting dates %q are not a range", m.Dates)
	}
	if term.StartDate, err = gradeforge.ParsePortalDate(start); err != nil {
		return err
	}
	if term.EndDate, err = gradeforge.ParsePortalDate(end); err != nil {
		return err
	}

	s.PrimaryInstructor, s.SecondaryInstructors = decodeInstructors(ectx, row, m.Instructors)
	fields["primaryInstructor"], fields["secondaryInstructors"] = s.PrimaryInstructor, s.SecondaryInstructors
	return nil
}

// decodeInstructors returns the primary instructor and the comma-joined
// secondary instructors. Names come from the comma-separated instructor
// text; mailto links attach emails to the names their target matches.
// Linked names missing from the text are appended.
func decodeInstructors(ectx *gradeforge.ExtractionContext, row *goquery.Selection, text string) (string, string) {
	if text == gradeforge.TBA {
		return gradeforge.TBA, ""
	}

	var names []string
	for _, name := range strings.Split(text, ",") {
		if name = gradeforge.NormalizeInstructorName(name); name != "" {
			names = append(names, name)
		}
	}

	emails := make(map[string]string)
	row.ChildrenFiltered("td").ChildrenFiltered(`a[href^="mailto:"]`).Each(func(_ int, a *goquery.Selection) {
		name := gradeforge.NormalizeInstructorName(a.AttrOr("target", ""))
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if _, ok := emails[key]; ok {
			return
		}
		emails[key] = strings.TrimPrefix(a.AttrOr("href", ""), "mailto:")
		if !slices.ContainsFunc(names, func(n string) bool { return strings.EqualFold(n, name) }) {
			names = append(names, name)
		}
	})

	for _, name := range names {
		ectx.AddInstructor(name, emails[strings.ToLower(name)])
	}

	if len(names) == 0 {
		return "", ""
	}
	return names[0], strings.Join(names[1:], ",")
}
