package codesearch

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// PathNormalizer turns project-relative and home-relative paths into
// absolute paths. The zero value uses the invoking user's environment.
type PathNormalizer struct {
	// HomeDir returns the invoking user's home directory.
	// Defaults to os.UserHomeDir.
	HomeDir func() (string, error)

	// LookupHome returns the home directory of the named user, for "~name".
	// Defaults to an os/user lookup.
	LookupHome func(name string) (string, error)
}

// NormalizePath normalizes path against baseDir using the invoking user's
// environment.
func NormalizePath(path, baseDir string) string {
	return PathNormalizer{}.Normalize(path, baseDir)
}

// ExpandHome expands a leading "~" or "~name" using the invoking user's
// environment.
func ExpandHome(path string) string {
	return PathNormalizer{}.ExpandHome(path)
}

// Normalize expands a leading home marker and joins a still-relative result
// onto baseDir. It never fails and does not touch the filesystem.
func (n PathNormalizer) Normalize(path, baseDir string) string {
	path = n.ExpandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return path
}

// ExpandHome replaces "~" and "~name" prefixes with the matching home
// directory. Paths whose home directory cannot be determined are returned
// unchanged.
func (n PathNormalizer) ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	name, rest := path[1:], ""
	if i := strings.IndexRune(name, filepath.Separator); i >= 0 {
		name, rest = name[:i], name[i:]
	} else if i := strings.IndexByte(name, '/'); i >= 0 {
		name, rest = name[:i], name[i:]
	}

	var home string
	var err error
	if name == "" {
		home, err = n.homeDir()
	} else {
		home, err = n.lookupHome(name)
	}
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, rest)
}

func (n PathNormalizer) homeDir() (string, error) {
	if n.HomeDir != nil {
		return n.HomeDir()
	}
	return os.UserHomeDir()
}

func (n PathNormalizer) lookupHome(name string) (string, error) {
	if n.LookupHome != nil {
		return n.LookupHome(name)
	}
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}
