package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	names := deps.Info.SourceNames()
	if len(names) == 0 {
		fmt.Fprintf(deps.Stdout, "No items configured for %s.\n", deps.Info.Name)
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
