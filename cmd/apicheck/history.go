package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/apicheck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := apicheck.RunFilter{Limit: c.Limit}
	if deps.Info != nil {
		filter.Crate = &deps.Info.Name
	}
	if c.Item != "" {
		filter.Source = &c.Item
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'apicheck diff --record' to record one.")
		return nil
	}

	for _, run := range runs {
		status := "OK"
		if !run.OK {
			status = fmt.Sprintf("FAIL (%d gaps)", len(run.Gaps))
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", run.CreatedAt.Format(time.RFC3339), run.Crate, run.Source, status)
	}
	return nil
}
