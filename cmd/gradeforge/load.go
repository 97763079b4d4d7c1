package main

import (
	"fmt"

	"github.com/fwojciec/gradeforge/fs"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	rs, err := fs.ReadRecordSet(c.Dir)
	if err != nil {
		reportError(deps.Stderr, err)
		return err
	}
	if err := rs.Validate(); err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	if err := deps.Loader.Load(deps.Ctx, rs); err != nil {
		reportError(deps.Stderr, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Loaded %d records into %s\n", rs.Len(), deps.Config.DBPath)
	return nil
}
