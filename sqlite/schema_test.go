package sqlite_test

import (
	"testing"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findTable(t *testing.T, name string) sqlite.Table {
	t.Helper()
	for _, tbl := range sqlite.Tables {
		if tbl.Name == name {
			return tbl
		}
	}
	t.Fatalf("table %q not declared", name)
	return sqlite.Table{}
}

func TestTables(t *testing.T) {
	t.Parallel()

	t.Run("declares terms before sections", func(t *testing.T) {
		t.Parallel()

		names := make([]string, len(sqlite.Tables))
		for i, tbl := range sqlite.Tables {
			names[i] = tbl.Name
		}
		assert.Equal(t, []string{"class", "department", "instructor", "term", "section", "grade", "exam", "book"}, names)
	})

	t.Run("produces rows as wide as the column list", func(t *testing.T) {
		t.Parallel()

		rs := &gradeforge.RecordSet{
			Courses:     []*gradeforge.Course{{Department: "CSCE"}},
			Departments: []*gradeforge.Department{{Code: "CSCE"}},
			Instructors: []*gradeforge.Instructor{{Name: "Jane Doe"}},
			Terms:       []*gradeforge.Term{{Semester: "201808"}},
			Sections:    []*gradeforge.Section{{UID: "12566"}},
			Grades:      []*gradeforge.Grade{{Semester: "201808"}},
			Exams:       []*gradeforge.ExamSlot{{Semester: "201808"}},
			Books:       []*gradeforge.Book{{Title: "SICP"}},
		}
		for _, tbl := range sqlite.Tables {
			rows := tbl.Rows(rs)
			require.Len(t, rows, 1, tbl.Name)
			assert.Len(t, rows[0], len(tbl.Columns), tbl.Name)
		}
	})
}

func TestCreateTableSQL(t *testing.T) {
	t.Parallel()

	t.Run("renders keys and references", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			`CREATE TABLE "term" ("id" INTEGER PRIMARY KEY, "semester" TEXT, "startDate" TEXT, "endDate" TEXT, "registrationStart" TEXT, "registrationEnd" TEXT)`,
			sqlite.CreateTableSQL(findTable(t, "term")))
		assert.Contains(t, sqlite.CreateTableSQL(findTable(t, "section")), `"term" INTEGER REFERENCES term(id)`)
	})

	t.Run("quotes grade bucket names", func(t *testing.T) {
		t.Parallel()

		ddl := sqlite.CreateTableSQL(findTable(t, "grade"))

		assert.Contains(t, ddl, `"B+" INTEGER`)
		assert.Contains(t, ddl, `"No Grade" INTEGER`)
	})
}
