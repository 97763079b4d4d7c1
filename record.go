package gradeforge

// RecordSet holds the flat per-entity record streams produced by one batch.
// Section.Term values index into Terms.
type RecordSet struct {
	Courses     []*Course     `json:"courses"`
	Departments []*Department `json:"departments"`
	Instructors []*Instructor `json:"instructors"`
	Terms       []*Term       `json:"terms"`
	Sections    []*Section    `json:"sections"`
	Grades      []*Grade      `json:"grades"`
	Exams       []*ExamSlot   `json:"exams"`
	Books       []*Book       `json:"books"`
}

// Validate checks that every section references an existing term.
// A dangling reference is a deduplicator defect, so it reports EINTERNAL.
func (rs *RecordSet) Validate() error {
	for _, s := range rs.Sections {
		if s.Term < 0 || s.Term >= len(rs.Terms) {
			return Errorf(EINTERNAL, "section %s (%s %s) references term %d; %d terms known",
				s.UID, s.Department, s.Code, s.Term, len(rs.Terms))
		}
	}
	return nil
}

// Len returns the total number of records across all streams.
func (rs *RecordSet) Len() int {
	return len(rs.Courses) + len(rs.Departments) + len(rs.Instructors) + len(rs.Terms) +
		len(rs.Sections) + len(rs.Grades) + len(rs.Exams) + len(rs.Books)
}
