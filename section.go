package gradeforge

// TBA is the literal used for meeting times and instructors that have not
// been announced.
const TBA = "TBA"

// Term is a concrete academic session. Terms have no identity of their own:
// two terms are the same term only if every field matches.
type Term struct {
	Semester          string `json:"semester"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	RegistrationStart string `json:"registrationStart"`
	RegistrationEnd   string `json:"registrationEnd"`
}

// Section is one scheduled offering of a course. Term is the dense id
// assigned by ExtractionContext.TermID.
//
// Independent-study sections have no meeting pattern: Days, Location,
// StartTime, EndTime and PrimaryInstructor are empty and load as NULL.
type Section struct {
	UID                  string `json:"uid"`
	Department           string `json:"department"`
	Code                 string `json:"code"`
	Section              string `json:"section"`
	Term                 int    `json:"term"`
	Campus               string `json:"campus"`
	Type                 string `json:"type"`
	Method               string `json:"method"`
	Days                 string `json:"days,omitempty"`
	Location             string `json:"location,omitempty"`
	StartTime            string `json:"startTime,omitempty"`
	EndTime              string `json:"endTime,omitempty"`
	PrimaryInstructor    string `json:"primaryInstructor,omitempty"`
	SecondaryInstructors string `json:"secondaryInstructors,omitempty"`
	Syllabus             string `json:"syllabus,omitempty"`
	Attributes           string `json:"attributes,omitempty"`
}

// ExamSlot maps a regular meeting time to its final-exam date and time.
type ExamSlot struct {
	Semester string `json:"semester"`
	Days     string `json:"days"`
	TimeMet  string `json:"timeMet"`
	ExamDate string `json:"examDate"`
	ExamTime string `json:"examTime"`
}

// Book is one course-material listing from the bookstore.
// Prices that the bookstore does not offer are left empty.
type Book struct {
	Title     string `json:"title"`
	Required  string `json:"required"`
	Author    string `json:"author"`
	Edition   string `json:"edition"`
	Publisher string `json:"publisher"`
	ISBN      string `json:"isbn"`
	Image     string `json:"image"`
	Link      string `json:"link"`
	BuyNew    string `json:"buyNew,omitempty"`
	BuyUsed   string `json:"buyUsed,omitempty"`
	RentNew   string `json:"rentNew,omitempty"`
	RentUsed  string `json:"rentUsed,omitempty"`
}
