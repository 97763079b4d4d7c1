package sqlite

import (
	"strings"

	"github.com/fwojciec/gradeforge"
)

// Column is one column of a table definition.
type Column struct {
	Name string
	Type string
	// Constraint is appended to the column definition, e.g. "PRIMARY KEY".
	Constraint string
}

// Table declares a table and how its rows are drawn from a record set.
type Table struct {
	Name    string
	Columns []Column

	// Rows returns one value slice per record, in column order.
	Rows func(rs *gradeforge.RecordSet) [][]any
}

// Tables lists every table in load order. Referenced tables come before
// the tables referencing them.
var Tables = []Table{
	{
		Name: "class",
		Columns: []Column{
			{Name: "department", Type: "TEXT"},
			{Name: "code", Type: "TEXT"},
			{Name: "title", Type: "TEXT"},
			{Name: "description", Type: "TEXT"},
			{Name: "level", Type: "TEXT"},
			{Name: "credits", Type: "TEXT"},
			{Name: "type", Type: "TEXT"},
			{Name: "attributes", Type: "TEXT"},
			{Name: "division", Type: "TEXT"},
			{Name: "all_sections", Type: "TEXT"},
		},
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Courses))
			for _, c := range rs.Courses {
				rows = append(rows, []any{
					c.Department, c.Code, c.Title, c.Description, c.Level, c.Credits, c.Type,
					nullable(c.Attributes), nullable(c.Division), nullable(c.AllSections),
				})
			}
			return rows
		},
	},
	{
		Name: "department",
		Columns: []Column{
			{Name: "code", Type: "TEXT", Constraint: "PRIMARY KEY"},
			{Name: "description", Type: "TEXT"},
		},
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Departments))
			for _, d := range rs.Departments {
				rows = append(rows, []any{d.Code, d.Description})
			}
			return rows
		},
	},
	{
		Name: "instructor",
		Columns: []Column{
			{Name: "name", Type: "TEXT", Constraint: "PRIMARY KEY"},
			{Name: "email", Type: "TEXT"},
		},
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Instructors))
			for _, in := range rs.Instructors {
				rows = append(rows, []any{in.Name, nullable(in.Email)})
			}
			return rows
		},
	},
	{
		Name: "term",
		Columns: []Column{
			{Name: "id", Type: "INTEGER", Constraint: "PRIMARY KEY"},
			{Name: "semester", Type: "TEXT"},
			{Name: "startDate", Type: "TEXT"},
			{Name: "endDate", Type: "TEXT"},
			{Name: "registrationStart", Type: "TEXT"},
			{Name: "registrationEnd", Type: "TEXT"},
		},
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Terms))
			for id, t := range rs.Terms {
				rows = append(rows, []any{
					id, t.Semester,
					nullable(t.StartDate), nullable(t.EndDate),
					nullable(t.RegistrationStart), nullable(t.RegistrationEnd),
				})
			}
			return rows
		},
	},
	{
		Name: "section",
		Columns: []Column{
			{Name: "uid", Type: "TEXT"},
			{Name: "department", Type: "TEXT"},
			{Name: "code", Type: "TEXT"},
			{Name: "section", Type: "TEXT"},
			{Name: "term", Type: "INTEGER", Constraint: "REFERENCES term(id)"},
			{Name: "campus", Type: "TEXT"},
			{Name: "type", Type: "TEXT"},
			{Name: "method", Type: "TEXT"},
			{Name: "days", Type: "TEXT"},
			{Name: "location", Type: "TEXT"},
			{Name: "startTime", Type: "TEXT"},
			{Name: "endTime", Type: "TEXT"},
			{Name: "primary_instructor", Type: "TEXT"},
			{Name: "secondary_instructors", Type: "TEXT"},
			{Name: "syllabus", Type: "TEXT"},
			{Name: "attributes", Type: "TEXT"},
		},
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Sections))
			for _, s := range rs.Sections {
				rows = append(rows, []any{
					s.UID, s.Department, s.Code, s.Section, s.Term, s.Campus, s.Type, s.Method,
					nullable(s.Days), nullable(s.Location), nullable(s.StartTime), nullable(s.EndTime),
					nullable(s.PrimaryInstructor), nullable(s.SecondaryInstructors),
					nullable(s.Syllabus), nullable(s.Attributes),
				})
			}
			return rows
		},
	},
	{
		Name:    "grade",
		Columns: gradeColumns(),
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Grades))
			for _, g := range rs.Grades {
				row := []any{g.Semester, g.Campus, g.Department, g.Code, g.Section, nullable(g.Title)}
				for _, b := range gradeforge.GradeBuckets {
					if n, ok := g.Counts[b]; ok {
						row = append(row, n)
					} else {
						row = append(row, nil)
					}
				}
				rows = append(rows, row)
			}
			return rows
		},
	},
	{
		Name: "exam",
		Columns: []Column{
			{Name: "semester", Type: "TEXT"},
			{Name: "days", Type: "TEXT"},
			{Name: "time_met", Type: "TEXT"},
			{Name: "exam_date", Type: "TEXT"},
			{Name: "exam_time", Type: "TEXT"},
		},
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Exams))
			for _, e := range rs.Exams {
				rows = append(rows, []any{e.Semester, e.Days, e.TimeMet, e.ExamDate, e.ExamTime})
			}
			return rows
		},
	},
	{
		Name: "book",
		Columns: []Column{
			{Name: "title", Type: "TEXT"},
			{Name: "required", Type: "TEXT"},
			{Name: "author", Type: "TEXT"},
			{Name: "edition", Type: "TEXT"},
			{Name: "publisher", Type: "TEXT"},
			{Name: "isbn", Type: "TEXT"},
			{Name: "image", Type: "TEXT"},
			{Name: "link", Type: "TEXT"},
			{Name: "buy_new", Type: "TEXT"},
			{Name: "buy_used", Type: "TEXT"},
			{Name: "rent_new", Type: "TEXT"},
			{Name: "rent_used", Type: "TEXT"},
		},
		Rows: func(rs *gradeforge.RecordSet) [][]any {
			rows := make([][]any, 0, len(rs.Books))
			for _, b := range rs.Books {
				rows = append(rows, []any{
					b.Title, b.Required, b.Author, b.Edition, b.Publisher, b.ISBN,
					nullable(b.Image), nullable(b.Link),
					nullable(b.BuyNew), nullable(b.BuyUsed), nullable(b.RentNew), nullable(b.RentUsed),
				})
			}
			return rows
		},
	},
}

func gradeColumns() []Column {
	cols := []Column{
		{Name: "semester", Type: "TEXT"},
		{Name: "campus", Type: "TEXT"},
		{Name: "department", Type: "TEXT"},
		{Name: "code", Type: "TEXT"},
		{Name: "section", Type: "TEXT"},
		{Name: "title", Type: "TEXT"},
	}
	for _, b := range gradeforge.GradeBuckets {
		cols = append(cols, Column{Name: b, Type: "INTEGER"})
	}
	return cols
}

// CreateTableSQL returns the CREATE TABLE statement for t.
func CreateTableSQL(t Table) string {
	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		def := quoteIdent(c.Name) + " " + c.Type
		if c.Constraint != "" {
			def += " " + c.Constraint
		}
		defs[i] = def
	}
	return "CREATE TABLE " + quoteIdent(t.Name) + " (" + strings.Join(defs, ", ") + ")"
}

// insertSQL returns a parameterized INSERT of n rows into t.
func insertSQL(t Table, n int) string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = quoteIdent(c.Name)
	}
	tuple := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(t.Columns)), ", ") + ")"

	var b strings.Builder
	b.WriteString("INSERT INTO " + quoteIdent(t.Name) + " (" + strings.Join(names, ", ") + ") VALUES ")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(tuple)
	}
	return b.String()
}

// quoteIdent quotes a column or table name. Grade buckets such as "B+"
// and "No Grade" are not bare identifiers.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// nullable stores empty optional values as NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
