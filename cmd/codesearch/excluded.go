package main

import (
	"fmt"

	"github.com/fwojciec/codesearch"
)

// Run executes the excluded command.
func (c *ExcludedCmd) Run(deps *Dependencies) error {
	project, err := deps.Loader.LoadProject(c.Project)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codesearch.ErrorMessage(err))
		return err
	}

	s, err := deps.Resolver.ResolveSettings(project, c.Project, false)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codesearch.ErrorMessage(err))
		return err
	}

	filter := deps.NewFilter(s.PathsToExclude)
	for _, path := range c.Paths {
		excluded, err := filter.Excluded(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", codesearch.ErrorMessage(err))
			return err
		}
		status := "included"
		if excluded {
			status = "excluded"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", status, path)
	}
	return nil
}
