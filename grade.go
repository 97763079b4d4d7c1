package gradeforge

// GradeBuckets is the fixed column order of grade-distribution counts.
// Buckets after WF only appear for some campuses and eras.
var GradeBuckets = []string{
	"A", "B+", "B", "C+", "C", "D+", "D", "F",
	"AUDIT", "W", "WF",
	"A_GF", "B+_GF", "B_GF", "C+_GF", "C_GF", "D+_GF", "D_GF", "F_GF",
	"S", "U", "UN", "INCOMPLETE", "No Grade", "NR", "T", "FN", "IP", "TOTAL",
}

// Grade is the grade distribution of one section in one semester.
// Counts is keyed by the names in GradeBuckets; missing buckets load as NULL.
type Grade struct {
	Semester   string         `json:"semester"`
	Campus     string         `json:"campus"`
	Department string         `json:"department"`
	Code       string         `json:"code"`
	Section    string         `json:"section"`
	Title      string         `json:"title"`
	Counts     map[string]int `json:"counts"`
}
