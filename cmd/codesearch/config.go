package main

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/codesearch"
	"github.com/fwojciec/codesearch/sublime"
	"github.com/fwojciec/codesearch/toml"
)

// EnvSettings overrides the default settings file location.
const EnvSettings = "CODESEARCH_SETTINGS"

// loadGlobalSettings layers the settings file over m.Defaults. An explicitly
// named file must exist; the default location may be absent.
func (m *Main) loadGlobalSettings(explicit string) (codesearch.GlobalSettings, error) {
	path, required := explicit, true
	if path == "" {
		path, required = m.defaultSettingsPath(), false
	}

	layers := codesearch.LayeredSettings{}
	if path != "" {
		file, err := loadSettingsFile(path)
		if err != nil && (required || codesearch.ErrorCode(err) != codesearch.ENOTFOUND) {
			return nil, err
		} else if err == nil {
			layers = append(layers, file)
		}
	}
	if m.Defaults != nil {
		layers = append(layers, m.Defaults)
	}
	return layers, nil
}

// defaultSettingsPath applies $CODESEARCH_SETTINGS, then $XDG_CONFIG_HOME,
// then ~/.config. Returns "" when no location can be derived.
func (m *Main) defaultSettingsPath() string {
	getenv := m.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if path := strings.TrimSpace(getenv(EnvSettings)); path != "" {
		return codesearch.ExpandHome(path)
	}
	if xdg := strings.TrimSpace(getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "codesearch", "settings.toml")
	}
	if m.HomeDir == nil {
		return ""
	}
	home, err := m.HomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "codesearch", "settings.toml")
}

func loadSettingsFile(path string) (codesearch.GlobalSettings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sublime-settings", ".json":
		return sublime.LoadSettings(path)
	default:
		return toml.LoadSettings(path)
	}
}
