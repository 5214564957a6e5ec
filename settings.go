package codesearch

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// EnvIndexFile is the environment variable csearch and cindex read the index
// file location from.
const EnvIndexFile = "CSEARCHINDEX"

// Settings describes how the external search tools are configured for one
// project. A Settings value is never modified after construction; a new value
// replaces it whenever the project configuration changes.
type Settings struct {
	// SearchExecutablePath is the path to the csearch binary.
	SearchExecutablePath string `json:"searchExecutablePath"`

	// IndexExecutablePath is the path to the cindex binary.
	IndexExecutablePath string `json:"indexExecutablePath"`

	// IndexFilename is the absolute path of the index file.
	// Nil means the tools use their default location.
	IndexFilename *string `json:"indexFilename"`

	// PathsToIndex are the absolute directories passed to the indexer.
	PathsToIndex []string `json:"pathsToIndex"`

	// PathsToExclude are the absolute paths the indexer skips.
	PathsToExclude []string `json:"pathsToExclude"`
}

// NewSettings returns a Settings value that owns copies of its inputs.
// Nil slices are replaced by empty ones.
func NewSettings(searchPath, indexPath string, indexFilename *string, pathsToIndex, pathsToExclude []string) *Settings {
	s := &Settings{
		SearchExecutablePath: searchPath,
		IndexExecutablePath:  indexPath,
		PathsToIndex:         cloneStrings(pathsToIndex),
		PathsToExclude:       cloneStrings(pathsToExclude),
	}
	if indexFilename != nil {
		name := *indexFilename
		s.IndexFilename = &name
	}
	return s
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	return NewSettings(s.SearchExecutablePath, s.IndexExecutablePath, s.IndexFilename, s.PathsToIndex, s.PathsToExclude)
}

// Equal reports whether s and other hold the same five fields.
// Nil and empty path lists compare equal.
func (s *Settings) Equal(other *Settings) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.SearchExecutablePath != other.SearchExecutablePath ||
		s.IndexExecutablePath != other.IndexExecutablePath {
		return false
	}
	if (s.IndexFilename == nil) != (other.IndexFilename == nil) {
		return false
	}
	if s.IndexFilename != nil && *s.IndexFilename != *other.IndexFilename {
		return false
	}
	return slices.Equal(s.PathsToIndex, other.PathsToIndex) &&
		slices.Equal(s.PathsToExclude, other.PathsToExclude)
}

// Hash returns a structural hash of s. Equal settings hash equal.
func (s *Settings) Hash() uint64 {
	d := xxhash.New()
	writeField(d, s.SearchExecutablePath)
	writeField(d, s.IndexExecutablePath)
	if s.IndexFilename == nil {
		_, _ = d.Write([]byte{0})
	} else {
		_, _ = d.Write([]byte{1})
		writeField(d, *s.IndexFilename)
	}
	writeList(d, s.PathsToIndex)
	writeList(d, s.PathsToExclude)
	return d.Sum64()
}

// Environ returns the environment entries the search tools need, in
// "KEY=value" form. It is empty when the tool default index is used.
func (s *Settings) Environ() []string {
	if s.IndexFilename == nil {
		return []string{}
	}
	return []string{EnvIndexFile + "=" + *s.IndexFilename}
}

// String returns a single-line description of all fields.
func (s *Settings) String() string {
	indexFilename := "<default>"
	if s.IndexFilename != nil {
		indexFilename = *s.IndexFilename
	}
	return fmt.Sprintf("Settings(csearch=%s; cindex=%s; index_filename=%s; paths_to_index=%v; paths_to_exclude=%v)",
		s.SearchExecutablePath, s.IndexExecutablePath, indexFilename, s.PathsToIndex, s.PathsToExclude)
}

// Length-prefixed so that ("ab", "c") and ("a", "bc") hash differently.
func writeField(d *xxhash.Digest, v string) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(v)))
	_, _ = d.Write(n[:])
	_, _ = d.WriteString(v)
}

func writeList(d *xxhash.Digest, vs []string) {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(vs)))
	_, _ = d.Write(n[:])
	for _, v := range vs {
		writeField(d, v)
	}
}

func cloneStrings(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}
