package gradeforge

import "net/url"

// DefaultDBPath is the database file used when none is configured.
const DefaultDBPath = "gradeforge.db"

// Config holds the settings a run may read from a configuration file.
type Config struct {
	DBPath             string         `json:"dbPath"`
	BaseURL            string         `json:"baseUrl"`
	Semester           SemesterPolicy `json:"semester"`
	DepartmentTieBreak TieBreak       `json:"departmentTieBreak"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	p := DefaultPolicy()
	return Config{
		DBPath:             DefaultDBPath,
		BaseURL:            p.BaseURL,
		Semester:           p.Semester,
		DepartmentTieBreak: p.DepartmentTieBreak,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return Errorf(EINVALID, "database path required")
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid base URL %q", c.BaseURL)
	}
	switch c.DepartmentTieBreak {
	case TieBreakFirstSeen, TieBreakLexical:
	default:
		return Errorf(EINVALID, "unknown department tie-break %q", c.DepartmentTieBreak)
	}
	if c.Semester.MinYear > c.Semester.EraStartYear {
		return Errorf(EINVALID, "minimum year %d is after era start %d", c.Semester.MinYear, c.Semester.EraStartYear)
	}
	if s := c.Semester.PreEraSummerSuffix; s != "" && !twoDigitRe.MatchString(s) {
		return Errorf(EINVALID, "pre-era summer suffix %q must be two digits", s)
	}
	return nil
}

// Policy returns the extraction policy described by c.
func (c Config) Policy() Policy {
	return Policy{
		BaseURL:            c.BaseURL,
		Semester:           c.Semester,
		DepartmentTieBreak: c.DepartmentTieBreak,
	}
}
