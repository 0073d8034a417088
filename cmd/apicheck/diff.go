package main

import (
	"fmt"

	"github.com/fwojciec/apicheck"
)

// Run executes the diff command. Every gap of every selected item is
// printed before ErrGapsFound is returned.
func (c *DiffCmd) Run(deps *Dependencies) error {
	selected, err := c.selection(deps.Info)
	if err != nil {
		return err
	}

	checker := *deps.Checker
	checker.Concurrency = c.Concurrency
	if c.Record {
		if deps.Runs == nil {
			return apicheck.Errorf(apicheck.EINTERNAL, "run history is not available")
		}
		checker.Runs = deps.Runs
	}

	results, err := checker.CheckAll(deps.Ctx, selected)
	if err != nil {
		return err
	}

	var failed int
	for _, result := range results {
		for _, gap := range result.Report {
			fmt.Fprintln(deps.Stdout, gap)
		}
		if result.OK {
			fmt.Fprintf(deps.Stdout, "OK %s\n", result.Source)
			continue
		}
		failed++
		fmt.Fprintf(deps.Stdout, "FAIL %s (%d gaps)\n", result.Source, len(result.Report))
	}

	if failed > 0 {
		return fmt.Errorf("%w in %d of %d items", ErrGapsFound, failed, len(results))
	}
	return nil
}

// selection returns the configuration restricted to the requested items.
func (c *DiffCmd) selection(info *apicheck.Info) (*apicheck.Info, error) {
	switch {
	case c.All && len(c.Items) > 0:
		return nil, apicheck.Errorf(apicheck.EINVALID, "name items or pass --all, not both")
	case c.All:
		return info, nil
	case len(c.Items) == 0:
		return nil, apicheck.Errorf(apicheck.EINVALID, "no items given; name items or pass --all")
	}

	selected := &apicheck.Info{Name: info.Name}
	for _, name := range c.Items {
		source, err := info.FindSource(name)
		if err != nil {
			return nil, err
		}
		selected.Sources = append(selected.Sources, *source)
	}
	return selected, nil
}
