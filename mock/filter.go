package mock

import "github.com/fwojciec/codesearch"

var _ codesearch.PathFilter = (*PathFilter)(nil)

// PathFilter is a mock implementation of codesearch.PathFilter.
type PathFilter struct {
	ExcludedFn func(path string) (bool, error)
}

func (f *PathFilter) Excluded(path string) (bool, error) {
	return f.ExcludedFn(path)
}
