package main

import (
	"fmt"

	"github.com/fwojciec/gradeforge"
)

// Run executes the semester command.
func (c *SemesterCmd) Run(deps *Dependencies) error {
	now := deps.Now()
	season := c.Season
	if season == "" {
		season = string(gradeforge.SeasonOf(now.Month()))
	}
	year := c.Year
	if year == 0 {
		year = now.Year()
	}

	code, err := deps.Config.Semester.Encode(season, year)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	if c.Bookstore {
		if code, err = gradeforge.BookstoreTerm(code); err != nil {
			reportError(deps.Stderr, err)
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, code)
	return nil
}
