package gradeforge

import (
	"log/slog"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/google/uuid"
)

// TieBreak selects a department description when two descriptions were
// observed equally often.
type TieBreak string

// Supported tie-break rules.
const (
	TieBreakFirstSeen TieBreak = "first-seen"
	TieBreakLexical   TieBreak = "lexical"
)

// Policy holds the tunable decisions of an extraction batch.
type Policy struct {
	BaseURL            string         `json:"baseUrl"`
	Semester           SemesterPolicy `json:"semester"`
	DepartmentTieBreak TieBreak       `json:"departmentTieBreak"`
}

// DefaultPolicy returns the policy matching the portal as currently observed.
func DefaultPolicy() Policy {
	return Policy{
		BaseURL:            DefaultBaseURL,
		Semester:           DefaultSemesterPolicy,
		DepartmentTieBreak: TieBreakFirstSeen,
	}
}

// ExtractionContext carries the deduplication state of one batch run:
// the ordered term list, the instructor name/email map and the department
// description frequency table. It is owned by the batch driver and passed
// to each extractor; it is discarded when the batch ends.
//
// ExtractionContext is not safe for concurrent use.
type ExtractionContext struct {
	// ID identifies the batch in log records.
	ID     string
	Policy Policy

	logger   *slog.Logger
	warnings int

	terms []Term

	instructors     []*Instructor
	instructorIndex map[string]int

	departments     map[string]*descriptionTally
	departmentOrder []string
}

type descriptionTally struct {
	order  []string
	counts map[string]int
}

// NewExtractionContext returns an empty context. A nil logger discards warnings.
func NewExtractionContext(logger *slog.Logger, policy Policy) *ExtractionContext {
	id := uuid.NewString()
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExtractionContext{
		ID:              id,
		Policy:          policy,
		logger:          logger.With("batch", id),
		instructorIndex: make(map[string]int),
		departments:     make(map[string]*descriptionTally),
	}
}

// Logger returns the batch logger.
func (c *ExtractionContext) Logger() *slog.Logger {
	return c.logger
}

// Warn records a non-fatal problem in the warning stream.
func (c *ExtractionContext) Warn(msg string, args ...any) {
	c.warnings++
	c.logger.Warn(msg, args...)
}

// Warnings returns the number of warnings emitted so far.
func (c *ExtractionContext) Warnings() int {
	return c.warnings
}

// TermID returns the id of the term equal to t, appending t if no
// existing term matches on every field. Ids are dense and assigned in
// first-seen order.
func (c *ExtractionContext) TermID(t Term) int {
	for i, existing := range c.terms {
		if existing == t {
			return i
		}
	}
	c.terms = append(c.terms, t)
	return len(c.terms) - 1
}

// Terms returns the distinct terms in id order.
func (c *ExtractionContext) Terms() []*Term {
	terms := make([]*Term, len(c.terms))
	for i := range c.terms {
		t := c.terms[i]
		terms[i] = &t
	}
	return terms
}

// AddInstructor records an instructor. Names are compared after
// whitespace, parenthetical-suffix and case normalization. The first
// non-empty email seen for a name wins; a later different email is
// reported as a warning and discarded.
func (c *ExtractionContext) AddInstructor(name, email string) {
	name = NormalizeInstructorName(name)
	email = strings.TrimSpace(email)
	if name == "" || name == TBA {
		return
	}

	key := instructorKey(name)
	i, ok := c.instructorIndex[key]
	if !ok {
		c.instructorIndex[key] = len(c.instructors)
		c.instructors = append(c.instructors, &Instructor{Name: name, Email: email})
		return
	}

	existing := c.instructors[i]
	switch {
	case email == "" || email == existing.Email:
	case existing.Email == "":
		existing.Email = email
	default:
		c.Warn("instructor email conflict",
			"name", existing.Name,
			"kept", existing.Email,
			"discarded", email,
		)
	}
}

// Instructors returns the instructors in first-seen order.
func (c *ExtractionContext) Instructors() []*Instructor {
	out := make([]*Instructor, len(c.instructors))
	for i, in := range c.instructors {
		cp := *in
		out[i] = &cp
	}
	return out
}

// ObserveDepartment counts one occurrence of description for code.
func (c *ExtractionContext) ObserveDepartment(code, description string) {
	code = strings.TrimSpace(code)
	description = CollapseSpace(description)
	if code == "" || description == "" {
		return
	}

	tally, ok := c.departments[code]
	if !ok {
		tally = &descriptionTally{counts: make(map[string]int)}
		c.departments[code] = tally
		c.departmentOrder = append(c.departmentOrder, code)
	}
	if _, seen := tally.counts[description]; !seen {
		tally.order = append(tally.order, description)
	}
	tally.counts[description]++
}

// Departments selects the most frequently observed description for each
// code, in first-seen code order. Ties are broken by Policy.DepartmentTieBreak.
// A warning is logged for every code with more than one distinct description.
func (c *ExtractionContext) Departments() []*Department {
	departments := make([]*Department, 0, len(c.departmentOrder))
	for _, code := range c.departmentOrder {
		tally := c.departments[code]

		best := tally.order[0]
		for _, d := range tally.order[1:] {
			switch {
			case tally.counts[d] > tally.counts[best]:
				best = d
			case tally.counts[d] == tally.counts[best] &&
				c.Policy.DepartmentTieBreak == TieBreakLexical && d < best:
				best = d
			}
		}

		if len(tally.order) > 1 {
			for _, d := range tally.order {
				if d == best {
					continue
				}
				c.Warn("department description mismatch",
					"code", code,
					"kept", best,
					"keptCount", tally.counts[best],
					"discarded", d,
					"discardedCount", tally.counts[d],
					"similarity", matchr.JaroWinkler(best, d, false),
				)
			}
		}

		departments = append(departments, &Department{Code: code, Description: best})
	}
	return departments
}

// Finalize stores the deduplicated terms, instructors and departments in rs
// and checks that every section references an existing term.
func (c *ExtractionContext) Finalize(rs *RecordSet) error {
	rs.Terms = c.Terms()
	rs.Instructors = c.Instructors()
	rs.Departments = c.Departments()
	return rs.Validate()
}
