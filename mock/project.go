package mock

import "github.com/fwojciec/codesearch"

var _ codesearch.ProjectLoader = (*ProjectLoader)(nil)

// ProjectLoader is a mock implementation of codesearch.ProjectLoader.
type ProjectLoader struct {
	LoadProjectFn func(path string) (*codesearch.ProjectData, error)
}

func (l *ProjectLoader) LoadProject(path string) (*codesearch.ProjectData, error) {
	return l.LoadProjectFn(path)
}
