package codesearch

// PathFilter decides whether a path is skipped by the indexer.
type PathFilter interface {
	// Excluded reports whether path is covered by an exclusion.
	// Returns EINVALID if an exclusion pattern is malformed.
	Excluded(path string) (bool, error)
}
