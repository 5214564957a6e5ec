// Package exec supplies the fallback executable locations for the search
// tools by looking them up on PATH. Nothing is executed.
package exec

import (
	"os/exec"

	"github.com/fwojciec/codesearch"
)

// Default executable names.
const (
	SearchCommand = "csearch"
	IndexCommand  = "cindex"
)

// Ensure DefaultSettings implements codesearch.GlobalSettings.
var _ codesearch.GlobalSettings = (*DefaultSettings)(nil)

// DefaultSettings answers the executable path keys with the commands found
// on PATH, or with the bare command names when they are not installed.
type DefaultSettings struct {
	// LookPath finds a command. Defaults to os/exec.LookPath.
	LookPath func(file string) (string, error)
}

// NewDefaultSettings returns DefaultSettings using the process PATH.
func NewDefaultSettings() *DefaultSettings {
	return &DefaultSettings{LookPath: exec.LookPath}
}

func (s *DefaultSettings) Get(key string) (string, bool) {
	switch key {
	case codesearch.KeySearchPath:
		return s.lookup(SearchCommand), true
	case codesearch.KeyIndexPath:
		return s.lookup(IndexCommand), true
	}
	return "", false
}

func (s *DefaultSettings) lookup(name string) string {
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if path, err := lookPath(name); err == nil {
		return path
	}
	return name
}
