package main

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/codesearch"
	"github.com/fwojciec/codesearch/kdl"
	"github.com/fwojciec/codesearch/sublime"
	"github.com/fwojciec/codesearch/yaml"
)

// Ensure FileLoader implements codesearch.ProjectLoader.
var _ codesearch.ProjectLoader = (*FileLoader)(nil)

// FileLoader picks a project loader from the file extension.
type FileLoader struct {
	Sublime codesearch.ProjectLoader
	YAML    codesearch.ProjectLoader
	KDL     codesearch.ProjectLoader
}

// NewFileLoader returns a FileLoader with all supported formats.
func NewFileLoader() *FileLoader {
	return &FileLoader{
		Sublime: sublime.NewProjectLoader(),
		YAML:    yaml.NewProjectLoader(),
		KDL:     kdl.NewProjectLoader(),
	}
}

func (l *FileLoader) LoadProject(path string) (*codesearch.ProjectData, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sublime-project", ".json":
		return l.Sublime.LoadProject(path)
	case ".yaml", ".yml":
		return l.YAML.LoadProject(path)
	case ".kdl":
		return l.KDL.LoadProject(path)
	}
	return nil, codesearch.Errorf(codesearch.EINVALID, "unsupported project file %q", filepath.Base(path))
}
