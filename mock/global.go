package mock

import "github.com/fwojciec/codesearch"

var _ codesearch.GlobalSettings = (*GlobalSettings)(nil)

// GlobalSettings is a mock implementation of codesearch.GlobalSettings.
type GlobalSettings struct {
	GetFn func(key string) (string, bool)
}

func (s *GlobalSettings) Get(key string) (string, bool) {
	return s.GetFn(key)
}
