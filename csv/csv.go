// Package csv encodes record streams as CSV files with fixed header rows.
package csv

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strconv"

	"github.com/fwojciec/gradeforge"
)

// Header rows per entity.
var (
	CourseHeader     = []string{"department", "code", "title", "description", "level", "credits", "type", "attributes", "division", "all_sections"}
	DepartmentHeader = []string{"code", "description"}
	InstructorHeader = []string{"name", "email"}
	TermHeader       = []string{"semester", "startDate", "endDate", "registrationStart", "registrationEnd"}
	SectionHeader    = []string{"department", "code", "section", "UID", "term", "campus", "type", "method", "days", "location", "startTime", "endTime", "primary_instructor", "secondary_instructors", "syllabus", "attributes"}
	GradeHeader      = append([]string{"semester", "campus", "department", "code", "section", "title"}, gradeforge.GradeBuckets...)
	ExamHeader       = []string{"semester", "days", "time_met", "exam_date", "exam_time"}
	BookHeader       = []string{"title", "required", "author", "edition", "publisher", "isbn", "image", "link", "buy_new", "buy_used", "rent_new", "rent_used"}
)

// codec converts between one entity and its CSV row.
type codec[T any] struct {
	header []string
	encode func(*T) []string
	decode func([]string) (*T, error)
}

func (c codec[T]) marshal(w io.Writer, records []*T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(c.header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(c.encode(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (c codec[T]) unmarshal(r io.Reader) ([]*T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(c.header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "missing header row")
	} else if err != nil {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "header: %v", err)
	}
	if !slices.Equal(header, c.header) {
		return nil, gradeforge.Errorf(gradeforge.EINVALID, "unexpected header %v; want %v", header, c.header)
	}

	var out []*T
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		} else if err != nil {
			return nil, gradeforge.Errorf(gradeforge.EINVALID, "%v", err)
		}
		v, err := c.decode(rec)
		if err != nil {
			return nil, gradeforge.Errorf(gradeforge.EINVALID, "line %d: %s", line, gradeforge.ErrorMessage(err))
		}
		out = append(out, v)
	}
}

var courseCodec = codec[gradeforge.Course]{
	header: CourseHeader,
	encode: func(c *gradeforge.Course) []string {
		return []string{c.Department, c.Code, c.Title, c.Description, c.Level, c.Credits, c.Type, c.Attributes, c.Division, c.AllSections}
	},
	decode: func(r []string) (*gradeforge.Course, error) {
		return &gradeforge.Course{
			Department: r[0], Code: r[1], Title: r[2], Description: r[3], Level: r[4],
			Credits: r[5], Type: r[6], Attributes: r[7], Division: r[8], AllSections: r[9],
		}, nil
	},
}

var departmentCodec = codec[gradeforge.Department]{
	header: DepartmentHeader,
	encode: func(d *gradeforge.Department) []string {
		return []string{d.Code, d.Description}
	},
	decode: func(r []string) (*gradeforge.Department, error) {
		return &gradeforge.Department{Code: r[0], Description: r[1]}, nil
	},
}

var instructorCodec = codec[gradeforge.Instructor]{
	header: InstructorHeader,
	encode: func(in *gradeforge.Instructor) []string {
		return []string{in.Name, in.Email}
	},
	decode: func(r []string) (*gradeforge.Instructor, error) {
		return &gradeforge.Instructor{Name: r[0], Email: r[1]}, nil
	},
}

var termCodec = codec[gradeforge.Term]{
	header: TermHeader,
	encode: func(t *gradeforge.Term) []string {
		return []string{t.Semester, t.StartDate, t.EndDate, t.RegistrationStart, t.RegistrationEnd}
	},
	decode: func(r []string) (*gradeforge.Term, error) {
		return &gradeforge.Term{Semester: r[0], StartDate: r[1], EndDate: r[2], RegistrationStart: r[3], RegistrationEnd: r[4]}, nil
	},
}

var sectionCodec = codec[gradeforge.Section]{
	header: SectionHeader,
	encode: func(s *gradeforge.Section) []string {
		return []string{
			s.Department, s.Code, s.Section, s.UID, strconv.Itoa(s.Term), s.Campus, s.Type, s.Method,
			s.Days, s.Location, s.StartTime, s.EndTime, s.PrimaryInstructor, s.SecondaryInstructors,
			s.Syllabus, s.Attributes,
		}
	},
	decode: func(r []string) (*gradeforge.Section, error) {
		term, err := strconv.Atoi(r[4])
		if err != nil {
			return nil, gradeforge.Errorf(gradeforge.EINVALID, "term %q is not an id", r[4])
		}
		return &gradeforge.Section{
			Department: r[0], Code: r[1], Section: r[2], UID: r[3], Term: term,
			Campus: r[5], Type: r[6], Method: r[7], Days: r[8], Location: r[9],
			StartTime: r[10], EndTime: r[11], PrimaryInstructor: r[12], SecondaryInstructors: r[13],
			Syllabus: r[14], Attributes: r[15],
		}, nil
	},
}

var gradeCodec = codec[gradeforge.Grade]{
	header: GradeHeader,
	encode: func(g *gradeforge.Grade) []string {
		row := []string{g.Semester, g.Campus, g.Department, g.Code, g.Section, g.Title}
		for _, b := range gradeforge.GradeBuckets {
			if n, ok := g.Counts[b]; ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "")
			}
		}
		return row
	},
	decode: func(r []string) (*gradeforge.Grade, error) {
		g := &gradeforge.Grade{
			Semester: r[0], Campus: r[1], Department: r[2], Code: r[3], Section: r[4], Title: r[5],
			Counts: make(map[string]int),
		}
		for i, b := range gradeforge.GradeBuckets {
			v := r[6+i]
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, gradeforge.Errorf(gradeforge.EINVALID, "%s count %q is not an integer", b, v)
			}
			g.Counts[b] = n
		}
		return g, nil
	},
}

var examCodec = codec[gradeforge.ExamSlot]{
	header: ExamHeader,
	encode: func(e *gradeforge.ExamSlot) []string {
		return []string{e.Semester, e.Days, e.TimeMet, e.ExamDate, e.ExamTime}
	},
	decode: func(r []string) (*gradeforge.ExamSlot, error) {
		return &gradeforge.ExamSlot{Semester: r[0], Days: r[1], TimeMet: r[2], ExamDate: r[3], ExamTime: r[4]}, nil
	},
}

var bookCodec = codec[gradeforge.Book]{
	header: BookHeader,
	encode: func(b *gradeforge.Book) []string {
		return []string{b.Title, b.Required, b.Author, b.Edition, b.Publisher, b.ISBN, b.Image, b.Link, b.BuyNew, b.BuyUsed, b.RentNew, b.RentUsed}
	},
	decode: func(r []string) (*gradeforge.Book, error) {
		return &gradeforge.Book{
			Title: r[0], Required: r[1], Author: r[2], Edition: r[3], Publisher: r[4], ISBN: r[5],
			Image: r[6], Link: r[7], BuyNew: r[8], BuyUsed: r[9], RentNew: r[10], RentUsed: r[11],
		}, nil
	},
}

// MarshalCourses writes the header row followed by one row per course.
func MarshalCourses(w io.Writer, v []*gradeforge.Course) error { return courseCodec.marshal(w, v) }

// UnmarshalCourses reads courses written by MarshalCourses.
func UnmarshalCourses(r io.Reader) ([]*gradeforge.Course, error) { return courseCodec.unmarshal(r) }

// MarshalDepartments writes the header row followed by one row per department.
func MarshalDepartments(w io.Writer, v []*gradeforge.Department) error {
	return departmentCodec.marshal(w, v)
}

// UnmarshalDepartments reads departments written by MarshalDepartments.
func UnmarshalDepartments(r io.Reader) ([]*gradeforge.Department, error) {
	return departmentCodec.unmarshal(r)
}

// MarshalInstructors writes the header row followed by one row per instructor.
func MarshalInstructors(w io.Writer, v []*gradeforge.Instructor) error {
	return instructorCodec.marshal(w, v)
}

// UnmarshalInstructors reads instructors written by MarshalInstructors.
func UnmarshalInstructors(r io.Reader) ([]*gradeforge.Instructor, error) {
	return instructorCodec.unmarshal(r)
}

// MarshalTerms writes the header row followed by one row per term. A
// term's id is its zero-based row position.
func MarshalTerms(w io.Writer, v []*gradeforge.Term) error { return termCodec.marshal(w, v) }

// UnmarshalTerms reads terms written by MarshalTerms.
func UnmarshalTerms(r io.Reader) ([]*gradeforge.Term, error) { return termCodec.unmarshal(r) }

// MarshalSections writes the header row followed by one row per section.
func MarshalSections(w io.Writer, v []*gradeforge.Section) error { return sectionCodec.marshal(w, v) }

// UnmarshalSections reads sections written by MarshalSections.
func UnmarshalSections(r io.Reader) ([]*gradeforge.Section, error) { return sectionCodec.unmarshal(r) }

// MarshalGrades writes the header row followed by one row per grade
// distribution. Missing buckets are written as empty cells.
func MarshalGrades(w io.Writer, v []*gradeforge.Grade) error { return gradeCodec.marshal(w, v) }

// UnmarshalGrades reads grade distributions written by MarshalGrades.
func UnmarshalGrades(r io.Reader) ([]*gradeforge.Grade, error) { return gradeCodec.unmarshal(r) }

// MarshalExams writes the header row followed by one row per exam slot.
func MarshalExams(w io.Writer, v []*gradeforge.ExamSlot) error { return examCodec.marshal(w, v) }

// UnmarshalExams reads exam slots written by MarshalExams.
func UnmarshalExams(r io.Reader) ([]*gradeforge.ExamSlot, error) { return examCodec.unmarshal(r) }

// MarshalBooks writes the header row followed by one row per book.
func MarshalBooks(w io.Writer, v []*gradeforge.Book) error { return bookCodec.marshal(w, v) }

// UnmarshalBooks reads books written by MarshalBooks.
func UnmarshalBooks(r io.Reader) ([]*gradeforge.Book, error) { return bookCodec.unmarshal(r) }
