package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/codesearch"
	"golang.org/x/sync/errgroup"
)

// ResolvedProject pairs a project file with its settings.
type ResolvedProject struct {
	Project     string               `json:"project"`
	Fingerprint string               `json:"fingerprint"`
	Settings    *codesearch.Settings `json:"settings"`
}

func newResolvedProject(project string, s *codesearch.Settings) ResolvedProject {
	return ResolvedProject{
		Project:     project,
		Fingerprint: fmt.Sprintf("%016x", s.Hash()),
		Settings:    s,
	}
}

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	results, err := resolveProjects(deps, c.Projects, c.IndexFolders)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", codesearch.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "env":
		writeEnv(deps.Stdout, results)
	default:
		writeText(deps.Stdout, results)
	}
	return nil
}

// resolveProjects resolves each distinct project concurrently and returns the
// results in argument order. The first failure cancels the remaining work.
func resolveProjects(deps *Dependencies, projects []string, indexFolders bool) ([]ResolvedProject, error) {
	results := make([]ResolvedProject, len(projects))
	first := make(map[string]int, len(projects))
	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, path := range projects {
		if _, ok := first[path]; ok {
			continue
		}
		first[path] = i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			project, err := deps.Loader.LoadProject(path)
			if err != nil {
				return err
			}
			s, err := deps.Resolver.ResolveSettings(project, path, indexFolders)
			if err != nil {
				return err
			}
			results[i] = newResolvedProject(path, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, path := range projects {
		if j := first[path]; j != i {
			results[i] = newResolvedProject(path, results[j].Settings.Clone())
		}
	}
	return results, nil
}

func writeText(w io.Writer, results []ResolvedProject) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		s := r.Settings
		fmt.Fprintf(w, "%s\n", r.Project)
		fmt.Fprintf(w, "  csearch:     %s\n", s.SearchExecutablePath)
		fmt.Fprintf(w, "  cindex:      %s\n", s.IndexExecutablePath)
		fmt.Fprintf(w, "  fingerprint: %s\n", r.Fingerprint)
		if s.IndexFilename != nil {
			fmt.Fprintf(w, "  index file:  %s\n", *s.IndexFilename)
		} else {
			fmt.Fprintln(w, "  index file:  (tool default)")
		}
		for _, p := range s.PathsToIndex {
			fmt.Fprintf(w, "  index:       %s\n", p)
		}
		for _, p := range s.PathsToExclude {
			fmt.Fprintf(w, "  exclude:     %s\n", p)
		}
	}
}

func writeEnv(w io.Writer, results []ResolvedProject) {
	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(w, "# %s\n", r.Project)
		}
		for _, kv := range r.Settings.Environ() {
			key, value, _ := strings.Cut(kv, "=")
			fmt.Fprintf(w, "%s=%s\n", key, shellQuote(value))
		}
	}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
