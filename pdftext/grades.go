// Package pdftext decodes grade-distribution reports that were converted
// to text with `pdftotext -layout`.
package pdftext

import (
	"bufio"
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/gradeforge"
)

// Ensure GradeExtractor implements gradeforge.GradeExtractor.
var _ gradeforge.GradeExtractor = (*GradeExtractor)(nil)

// MinHeaders is the smallest column count of a usable report.
const MinHeaders = 18

var (
	reportTitleRe = regexp.MustCompile(`\s?GRADE\s?(SPREAD FOR|DISTRIBUTION)`)
	semesterRe    = regexp.MustCompile(`(?i)(FALL|SUMMER|SPRING)?\s?([0-9]{4})`)
	campusRe      = regexp.MustCompile(`(?i)((THE\s)?UNIVERSITY\sOF\sSOUTH\sCAROLINA\s?([‐-]|at)\s?|USC[‐\s-])([^:]*)`)
	campusWordRe  = regexp.MustCompile(`\sCAMPUS`)
	headerLineRe  = regexp.MustCompile(`(?i)^\s*DEP(AR)?T`)

	departmentRe = regexp.MustCompile(`DEP(AR)?T(\.|MENT)?`)
	sectionRe    = regexp.MustCompile(`SEC(T(ION)?)?\.?`)
	codeRe       = regexp.MustCompile(`C(OU)?RSE(\s?#)?`)
	auditRe      = regexp.MustCompile(`\bAUD(IT)?\b`)
	incompleteRe = regexp.MustCompile(`\sI\s`)
)

// Report columns that identify the section rather than count grades.
const (
	columnDepartment = "DEPARTMENT"
	columnCode       = "CODE"
	columnSection    = "SECTION"
	columnTitle      = "TITLE"
)

// GradeExtractor decodes text grade reports.
type GradeExtractor struct{}

// NewGradeExtractor creates a new grade extractor.
func NewGradeExtractor() *GradeExtractor {
	return &GradeExtractor{}
}

// ExtractGrades returns one grade distribution per data row of doc. Rows
// whose token count differs from the header count are page furniture and
// are skipped.
func (e *GradeExtractor) ExtractGrades(ectx *gradeforge.ExtractionContext, doc *gradeforge.Document) ([]*gradeforge.Grade, error) {
	scanner := bufio.NewScanner(bytes.NewReader(doc.Content))

	semester, campus, err := readMetadata(ectx, doc.Name, scanner)
	if err != nil {
		return nil, err
	}

	headers, err := readHeaders(doc.Name, scanner)
	if err != nil {
		return nil, err
	}

	buckets := bucketNames()
	for _, h := range headers {
		if _, ok := buckets[h]; !ok && !isIdentityColumn(h) {
			ectx.Warn("unknown grade column", "document", doc.Name, "column", h)
		}
	}

	var grades []*gradeforge.Grade
	for record := 0; scanner.Scan(); {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) != len(headers) {
			continue
		}

		g := &gradeforge.Grade{Semester: semester, Campus: campus, Counts: make(map[string]int)}
		fields := gradeforge.Fields{"semester": semester, "campus": campus}
		for i, h := range headers {
			fields[h] = tokens[i]
			switch h {
			case columnDepartment:
				g.Department = tokens[i]
			case columnCode:
				g.Code = tokens[i]
			case columnSection:
				g.Section = tokens[i]
			case columnTitle:
				g.Title = tokens[i]
			default:
				bucket, ok := buckets[h]
				if !ok {
					continue
				}
				n, err := strconv.Atoi(tokens[i])
				if err != nil {
					return nil, &gradeforge.RecordError{
						Document: doc.Name,
						Record:   record,
						Fields:   fields,
						Err:      gradeforge.Errorf(gradeforge.EINVALID, "column %s: count %q is not an integer", h, tokens[i]),
					}
				}
				g.Counts[bucket] = n
			}
		}
		grades = append(grades, g)
		record++
	}
	if err := scanner.Err(); err != nil {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "%s: %v", doc.Name, err)
	}
	return grades, nil
}

// readMetadata consumes lines up to the first one naming a year and
// decodes the semester and campus from it. A missing season is reported
// as a warning and read as Spring.
func readMetadata(ectx *gradeforge.ExtractionContext, name string, scanner *bufio.Scanner) (string, string, error) {
	for scanner.Scan() {
		line := reportTitleRe.ReplaceAllString(strings.TrimSpace(scanner.Text()), "")
		m := semesterRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		season := m[1]
		if season == "" {
			ectx.Warn("grade report has no season; assuming Spring", "document", name, "line", line)
			season = string(gradeforge.Spring)
		}
		year, _ := strconv.Atoi(m[2])
		semester, err := ectx.Policy.Semester.Encode(season, year)
		if err != nil {
			return "", "", err
		}

		c := campusRe.FindStringSubmatch(line)
		if c == nil {
			return "", "", gradeforge.Errorf(gradeforge.EINVALID, "%s: no campus in report title %q", name, line)
		}
		campus := strings.ToUpper(strings.TrimSpace(campusWordRe.ReplaceAllString(c[4], "")))
		return semester, campus, nil
	}
	return "", "", gradeforge.Errorf(gradeforge.EINVALID, "%s: no report title naming a semester", name)
}

// readHeaders consumes lines up to the column header line and returns
// the normalized column names.
func readHeaders(name string, scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		line := scanner.Text()
		if !headerLineRe.MatchString(line) {
			continue
		}
		headers := NormalizeHeaders(line)
		if len(headers) < MinHeaders {
			return nil, gradeforge.Errorf(gradeforge.EINVALID, "%s: header line has %d columns; want at least %d", name, len(headers), MinHeaders)
		}
		return headers, nil
	}
	return nil, gradeforge.Errorf(gradeforge.EINVALID, "%s: no column header line", name)
}

// NormalizeHeaders maps the header spellings used across report eras to
// one vocabulary: "DEPT CRSE # SEC ... AUD ... I" becomes
// DEPARTMENT, CODE, SECTION, AUDIT and INCOMPLETE.
func NormalizeHeaders(line string) []string {
	line = strings.ToUpper(line)
	line = departmentRe.ReplaceAllString(line, columnDepartment)
	line = sectionRe.ReplaceAllString(line, columnSection)
	line = codeRe.ReplaceAllString(line, columnCode)
	line = strings.ReplaceAll(line, "DEPARTMENT/CODE", "DEPARTMENT CODE")
	line = auditRe.ReplaceAllString(line, "AUDIT")
	// Spaces are doubled and the line padded so adjacent and trailing
	// single-letter columns match too.
	line = incompleteRe.ReplaceAllString(" "+strings.ReplaceAll(line, " ", "  ")+" ", " INCOMPLETE ")
	return strings.Fields(line)
}

func bucketNames() map[string]string {
	m := make(map[string]string, len(gradeforge.GradeBuckets))
	for _, b := range gradeforge.GradeBuckets {
		m[strings.ToUpper(b)] = b
	}
	return m
}

func isIdentityColumn(h string) bool {
	return h == columnDepartment || h == columnCode || h == columnSection || h == columnTitle
}
