package fs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/gradeforge"
	"github.com/fwojciec/gradeforge/csv"
)

// Ensure RecordStore implements gradeforge.RecordStore at compile time.
var _ gradeforge.RecordStore = (*RecordStore)(nil)

// recordFile binds one CSV file of an extraction directory to a stream.
type recordFile struct {
	name  string
	write func(io.Writer, *gradeforge.RecordSet) error
	read  func(io.Reader, *gradeforge.RecordSet) error
}

// recordFiles lists the files of an extraction directory.
var recordFiles = []recordFile{
	{
		name:  "courses.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalCourses(w, rs.Courses) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Courses, err = csv.UnmarshalCourses(r)
			return err
		},
	},
	{
		name:  "departments.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalDepartments(w, rs.Departments) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Departments, err = csv.UnmarshalDepartments(r)
			return err
		},
	},
	{
		name:  "instructors.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalInstructors(w, rs.Instructors) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Instructors, err = csv.UnmarshalInstructors(r)
			return err
		},
	},
	{
		name:  "terms.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalTerms(w, rs.Terms) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Terms, err = csv.UnmarshalTerms(r)
			return err
		},
	},
	{
		name:  "sections.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalSections(w, rs.Sections) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Sections, err = csv.UnmarshalSections(r)
			return err
		},
	},
	{
		name:  "grades.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalGrades(w, rs.Grades) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Grades, err = csv.UnmarshalGrades(r)
			return err
		},
	},
	{
		name:  "exams.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalExams(w, rs.Exams) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Exams, err = csv.UnmarshalExams(r)
			return err
		},
	},
	{
		name:  "books.csv",
		write: func(w io.Writer, rs *gradeforge.RecordSet) error { return csv.MarshalBooks(w, rs.Books) },
		read: func(r io.Reader, rs *gradeforge.RecordSet) (err error) {
			rs.Books, err = csv.UnmarshalBooks(r)
			return err
		},
	},
}

// RecordStore writes record sets as CSV files with atomic update
// semantics. Files are saved to a temporary directory, then moved into
// place on Commit, so an aborted batch leaves no partial output.
type RecordStore struct {
	baseDir string
	name    string
}

// NewRecordStore creates a new RecordStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewRecordStore(baseDir, name string) *RecordStore {
	return &RecordStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *RecordStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *RecordStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one CSV file per record stream into the temporary directory.
func (s *RecordStore) Save(ctx context.Context, rs *gradeforge.RecordSet) error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	for _, rf := range recordFiles {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeRecordFile(filepath.Join(s.tempDir(), rf.name), rf, rs); err != nil {
			return err
		}
	}
	return nil
}

func writeRecordFile(path string, rf recordFile, rs *gradeforge.RecordSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rf.write(f, rs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Commit replaces the output directory with the saved files.
func (s *RecordStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved files.
func (s *RecordStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// ReadRecordSet reads an extraction directory written by RecordStore.
func ReadRecordSet(dir string) (*gradeforge.RecordSet, error) {
	rs := &gradeforge.RecordSet{}
	for _, rf := range recordFiles {
		if err := readRecordFile(filepath.Join(dir, rf.name), rf, rs); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

func readRecordFile(path string, rf recordFile, rs *gradeforge.RecordSet) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return gradeforge.Errorf(gradeforge.ENOTFOUND, "record file %q not found", path)
	} else if err != nil {
		return err
	}
	defer f.Close()

	if err := rf.read(f, rs); err != nil {
		return gradeforge.Errorf(gradeforge.ErrorCode(err), "%s: %s", path, gradeforge.ErrorMessage(err))
	}
	return nil
}
