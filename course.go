package gradeforge

// Course is one catalog entry. (Department, Code) is not unique because
// courses can be cross-listed.
type Course struct {
	Department  string `json:"department"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Credits     string `json:"credits"`
	Attributes  string `json:"attributes,omitempty"`
	Level       string `json:"level"`
	Type        string `json:"type"`
	Division    string `json:"division,omitempty"`
	AllSections string `json:"allSections,omitempty"`
}

// Department is a department code with its canonical description.
type Department struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Instructor is identified by name within one load.
type Instructor struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
