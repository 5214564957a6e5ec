// Package kdl loads project definitions written in KDL:
//
//	code_search {
//	    csearchindex "idx/file.csearchindex"
//	    exclude "~/skip" "rel/dir"
//	}
//	folders {
//	    folder path="src" name="Sources"
//	    folder path="/abs/lib"
//	}
//
// A folder may also be given as an argument (folder "src") or inline
// (folders "src" "lib").
package kdl

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/codesearch"
	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// Ensure ProjectLoader implements codesearch.ProjectLoader.
var _ codesearch.ProjectLoader = (*ProjectLoader)(nil)

// ProjectLoader loads .codesearch.kdl project files.
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

	doc, err := kdl.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, codesearch.Errorf(codesearch.EINVALID, "parse %s: %s", path, err)
	}
	project, err := decodeProject(doc)
	if err != nil {
		return nil, codesearch.Errorf(codesearch.EINVALID, "decode %s: %s", path, err)
	}
	return project, nil
}

func decodeProject(doc *document.Document) (*codesearch.ProjectData, error) {
	project := &codesearch.ProjectData{}
	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "code_search":
			cs := project.CodeSearch
			if cs == nil {
				cs = &codesearch.CodeSearchConfig{}
				project.CodeSearch = cs
			}
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "csearchindex":
					s, ok := firstStringArg(cn)
					if !ok {
						return nil, fmt.Errorf("csearchindex must be a string")
					}
					cs.CSearchIndex = &s
				case "exclude":
					excludes, err := collectStringArgs(cn)
					if err != nil {
						return nil, fmt.Errorf("exclude: %w", err)
					}
					cs.Exclude = append(cs.Exclude, excludes...)
				}
			}
		case "folders":
			folders, err := decodeFolders(n)
			if err != nil {
				return nil, fmt.Errorf("folders: %w", err)
			}
			project.Folders = append(project.Folders, folders...)
		}
	}
	return project, nil
}

// decodeFolders reads the inline form (folders "a" "b") or one child per
// folder, where the path comes from the path property, the first argument,
// or a bare node name ("src").
func decodeFolders(n *document.Node) ([]codesearch.Folder, error) {
	if len(n.Arguments) > 0 {
		paths, err := collectStringArgs(n)
		if err != nil {
			return nil, err
		}
		folders := make([]codesearch.Folder, 0, len(paths))
		for _, path := range paths {
			folders = append(folders, codesearch.Folder{Path: path})
		}
		return folders, nil
	}

	folders := make([]codesearch.Folder, 0, len(n.Children))
	for _, child := range n.Children {
		var folder codesearch.Folder
		if v, ok := child.Properties["path"]; ok && v != nil {
			s, ok := v.Value.(string)
			if !ok {
				return nil, fmt.Errorf("path must be a string")
			}
			folder.Path = s
		} else if len(child.Arguments) > 0 {
			s, ok := firstStringArg(child)
			if !ok {
				return nil, fmt.Errorf("path must be a string")
			}
			folder.Path = s
		} else if name := nodeName(child); name != "" && name != "folder" {
			folder.Path = name
		} else {
			return nil, fmt.Errorf("folder without path")
		}
		if v, ok := child.Properties["name"]; ok && v != nil {
			if s, ok := v.Value.(string); ok {
				folder.Name = s
			}
		}
		folders = append(folders, folder)
	}
	return folders, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	s, ok := n.Arguments[0].Value.(string)
	return s, ok
}

// collectStringArgs accepts both the inline form (exclude "a" "b") and the
// block form where each child carries one value (exclude { - "a" }) or is
// the value itself (exclude { "a" }). Non-string values are rejected.
func collectStringArgs(n *document.Node) ([]string, error) {
	if len(n.Arguments) > 0 {
		out := make([]string, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			s, ok := a.Value.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %v", a.Value)
			}
			out = append(out, s)
		}
		return out, nil
	}

	out := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		if len(child.Arguments) > 0 {
			s, ok := firstStringArg(child)
			if !ok {
				return nil, fmt.Errorf("expected string, got %v", child.Arguments[0].Value)
			}
			out = append(out, s)
		} else if name := nodeName(child); name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}
