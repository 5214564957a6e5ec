// Package toml provides global settings stored in a TOML file.
package toml

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/codesearch"
)

// Ensure SettingsFile implements codesearch.GlobalSettings.
var _ codesearch.GlobalSettings = (*SettingsFile)(nil)

// SettingsFile is a GlobalSettings read from top-level TOML keys:
//
//	path_csearch = "/usr/local/bin/csearch"
//	path_cindex  = "/usr/local/bin/cindex"
type SettingsFile struct {
	values map[string]any
}

// LoadSettings decodes the TOML file at path.
func LoadSettings(path string) (*SettingsFile, error) {
	values := make(map[string]any)
	if _, err := toml.DecodeFile(path, &values); errors.Is(err, fs.ErrNotExist) {
		return nil, codesearch.Errorf(codesearch.ENOTFOUND, "settings file %q not found", path)
	} else if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return nil, codesearch.Errorf(codesearch.EINVALID, "parse %s: %s", path, perr.Error())
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &SettingsFile{values: values}, nil
}

// Get returns top-level string values. Tables and non-string values are
// reported as absent.
func (f *SettingsFile) Get(key string) (string, bool) {
	v, ok := f.values[key].(string)
	return v, ok
}
