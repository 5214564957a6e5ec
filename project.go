package codesearch

// ProjectData is the parsed project definition document. Only the parts the
// code search integration reads are modelled.
type ProjectData struct {
	CodeSearch *CodeSearchConfig `json:"code_search,omitempty" yaml:"code_search,omitempty"`
	Folders    []Folder          `json:"folders,omitempty" yaml:"folders,omitempty"`
}

// CodeSearchConfig is the optional code_search section of a project.
type CodeSearchConfig struct {
	// CSearchIndex is the index file location. Nil when the key is absent.
	CSearchIndex *string  `json:"csearchindex,omitempty" yaml:"csearchindex,omitempty"`
	Exclude      []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// Folder is one entry of the project's folder list.
type Folder struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// ProjectLoader reads a project definition file.
type ProjectLoader interface {
	// LoadProject parses the project file at path.
	// Returns ENOTFOUND if the file does not exist and EINVALID if it
	// cannot be parsed.
	LoadProject(path string) (*ProjectData, error)
}
