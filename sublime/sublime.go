// Package sublime reads Sublime Text project and settings files. Both are
// JSON documents that may carry comments and trailing commas.
package sublime

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/codesearch"
	"github.com/tailscale/hujson"
)

// SettingsFilename is the plugin's settings file name.
const SettingsFilename = "YetAnotherCodeSearch.sublime-settings"

// Ensure types implement their interfaces.
var (
	_ codesearch.ProjectLoader  = (*ProjectLoader)(nil)
	_ codesearch.GlobalSettings = (*SettingsFile)(nil)
)

// ProjectLoader loads .sublime-project files.
type ProjectLoader struct{}

// NewProjectLoader returns a new ProjectLoader.
func NewProjectLoader() *ProjectLoader {
	return &ProjectLoader{}
}

func (l *ProjectLoader) LoadProject(path string) (*codesearch.ProjectData, error) {
	var project codesearch.ProjectData
	if err := decodeFile(path, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// SettingsFile is a GlobalSettings backed by a .sublime-settings file.
// Only string values are visible through Get.
type SettingsFile struct {
	values map[string]any
}

// LoadSettings reads the settings file at path.
func LoadSettings(path string) (*SettingsFile, error) {
	values := make(map[string]any)
	if err := decodeFile(path, &values); err != nil {
		return nil, err
	}
	return &SettingsFile{values: values}, nil
}

func (f *SettingsFile) Get(key string) (string, bool) {
	v, ok := f.values[key].(string)
	return v, ok
}

func decodeFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return codesearch.Errorf(codesearch.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	b, err = hujson.Standardize(b)
	if err != nil {
		return codesearch.Errorf(codesearch.EINVALID, "parse %s: %s", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return codesearch.Errorf(codesearch.EINVALID, "decode %s: %s", path, err)
	}
	return nil
}
