// Package doublestar matches paths against resolved exclusion entries.
package doublestar

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/codesearch"
)

// Ensure ExcludeMatcher implements codesearch.PathFilter.
var _ codesearch.PathFilter = (*ExcludeMatcher)(nil)

// ExcludeMatcher reports whether a path is covered by any exclusion entry.
// An entry covers a path when they are equal, when the path lies beneath the
// entry, or when the entry is a glob (with ** support) matching the path.
type ExcludeMatcher struct {
	entries []string
}

// NewExcludeMatcher returns a matcher over the given absolute entries,
// typically Settings.PathsToExclude.
func NewExcludeMatcher(entries []string) *ExcludeMatcher {
	m := &ExcludeMatcher{entries: make([]string, 0, len(entries))}
	for _, e := range entries {
		if e == "" {
			continue
		}
		m.entries = append(m.entries, filepath.Clean(e))
	}
	return m
}

func (m *ExcludeMatcher) Excluded(path string) (bool, error) {
	path = filepath.Clean(path)
	for _, entry := range m.entries {
		if underDir(path, entry) {
			return true, nil
		}
		if !hasMeta(entry) {
			continue
		}
		if !doublestar.ValidatePathPattern(entry) {
			return false, codesearch.Errorf(codesearch.EINVALID, "invalid exclude pattern %q", entry)
		}
		ok, err := doublestar.PathMatch(entry, path)
		if err != nil {
			return false, codesearch.Errorf(codesearch.EINVALID, "invalid exclude pattern %q: %s", entry, err)
		}
		if ok {
			return true, nil
		}
		// A directory glob also covers everything below the matched directory.
		ok, _ = doublestar.PathMatch(entry+string(filepath.Separator)+"**", path)
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func underDir(path, dir string) bool {
	if path == dir {
		return true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
