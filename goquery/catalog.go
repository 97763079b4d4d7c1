package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gradeforge"
)

// Ensure CatalogExtractor implements gradeforge.CatalogExtractor.
var _ gradeforge.CatalogExtractor = (*CatalogExtractor)(nil)

// departmentNoiseRe matches the decorations around a department name in
// catalog bodies: "USC-A Computer Science Department" -> "Computer Science".
var departmentNoiseRe = regexp.MustCompile(` Department|(USC-[AB]|Upstate|Sch of) `)

// CatalogExtractor decodes catalog listing pages.
type CatalogExtractor struct{}

// NewCatalogExtractor creates a new catalog extractor.
func NewCatalogExtractor() *CatalogExtractor {
	return &CatalogExtractor{}
}

// ExtractCatalog returns one course per header/body row pair of every
// full-width data table in doc.
func (e *CatalogExtractor) ExtractCatalog(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Course, error) {
	d, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}

	rows := listingRows(d.Find(`table.datadisplaytable[width="100%"]`))
	if err := checkAlternation(doc.Name, rows); err != nil {
		return nil, err
	}

	courses := make([]*gradeforge.Course, 0, rows.Length()/2)
	for i := 0; i < rows.Length(); i += 2 {
		fields := gradeforge.Fields{}
		course, err := decodeCourse(ectx, rows.Eq(i), rows.Eq(i+1), fields)
		if err != nil {
			return nil, &gradeforge.RecordError{Document: doc.Name, Record: i / 2, Fields: fields, Err: err}
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func decodeCourse(ectx *gradeforge.ExtractionContext, header, body *goquery.Selection, fields gradeforge.Fields) (*gradeforge.Course, error) {
	title := cleanText(header.ChildrenFiltered("td").First().ChildrenFiltered("a").First().Text())
	fields["header"] = title

	id, rest, ok := strings.Cut(title, " - ")
	if !ok {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "course title %q has no \" - \" delimiter", title)
	}
	department, code, ok := strings.Cut(id, " ")
	if !ok {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "course id %q is not \"DEPT CODE\"", id)
	}
	c := &gradeforge.Course{
		Department: department,
		Code:       code,
		Title:      strings.TrimSpace(rest),
	}
	fields["department"], fields["code"], fields["title"] = c.Department, c.Code, c.Title

	td := body.ChildrenFiltered("td").First()
	if td.Length() == 0 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "course body has no cell")
	}
	node := td.Get(0)

	c.Description = cleanText(leadingText(node))
	c.Credits = gradeforge.ParseCredits(textAfter(node, "br"))
	fields["description"], fields["credits"] = c.Description, c.Credits

	spans := spanTails(node)
	if len(spans) == 0 {
		return nil, gradeforge.Errorf(gradeforge.ESTRUCTURE, "course body has no labelled fields")
	}
	c.Level, spans = cleanText(spans[0]), spans[1:]
	fields["level"] = c.Level

	// Optional fields are peeled off the end: attributes, the department
	// line, then the division. What remains are schedule types.
	var deptText string
	if n := len(spans); n > 0 && strings.Contains(spans[n-1], " Department") {
		deptText, spans = spans[n-1], spans[:n-1]
	} else if n > 1 {
		c.Attributes, spans = cleanText(spans[n-1]), spans[:n-1]
		if n := len(spans); strings.Contains(spans[n-1], " Department") {
			deptText, spans = spans[n-1], spans[:n-1]
		}
	}
	if n := len(spans); n > 0 && strings.Contains(spans[n-1], " Division") {
		c.Division, spans = cleanText(strings.Replace(spans[n-1], " Division", "", 1)), spans[:n-1]
	}
	c.Type = joinDistinct(spans)
	fields["attributes"], fields["division"], fields["type"] = c.Attributes, c.Division, c.Type

	if deptText != "" {
		description := cleanText(departmentNoiseRe.ReplaceAllString(deptText, ""))
		fields["departmentDescription"] = description
		ectx.ObserveDepartment(c.Department, description)
	}

	if href, ok := td.ChildrenFiltered("a").First().Attr("href"); ok {
		c.AllSections = gradeforge.AbsoluteLink(ectx.Policy.BaseURL, href)
	}
	return c, nil
}

// joinDistinct splits each part on ", " and joins the distinct values in
// first-seen order. Schedule types are sometimes spread over several
// nodes and sometimes packed into one.
func joinDistinct(parts []string) string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range parts {
		for _, v := range strings.Split(p, ",") {
			v = cleanText(v)
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return strings.Join(out, ", ")
}
