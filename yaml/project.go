// Package yaml loads project definitions written in YAML:
//
//	code_search:
//	  csearchindex: idx/file.csearchindex
//	  exclude: [~/skip, rel/dir]
//	folders:
//	  - path: src
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/codesearch"
	"gopkg.in/yaml.v3"
)

// Ensure ProjectLoader implements codesearch.ProjectLoader.
var _ codesearch.ProjectLoader = (*ProjectLoader)(nil)

// ProjectLoader loads .codesearch.yaml project files.
type ProjectLoader struct{}

// NewProjectLoader returns a new ProjectLoader.
func NewProjectLoader() *ProjectLoader {
	return &ProjectLoader{}
}

func (l *ProjectLoader) LoadProject(path string) (*codesearch.ProjectData, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, codesearch.Errorf(codesearch.ENOTFOUND, "project file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var project codesearch.ProjectData
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&project); err != nil && !errors.Is(err, io.EOF) {
		return nil, codesearch.Errorf(codesearch.EINVALID, "decode %s: %s", path, err)
	}
	return &project, nil
}
