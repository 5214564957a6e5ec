package mock

import "github.com/fwojciec/codesearch"

var _ codesearch.SettingsResolver = (*SettingsResolver)(nil)

// SettingsResolver is a mock implementation of codesearch.SettingsResolver.
type SettingsResolver struct {
	ResolveSettingsFn func(project *codesearch.ProjectData, projectFile string, indexProjectFolders bool) (*codesearch.Settings, error)
}

func (r *SettingsResolver) ResolveSettings(project *codesearch.ProjectData, projectFile string, indexProjectFolders bool) (*codesearch.Settings, error) {
	return r.ResolveSettingsFn(project, projectFile, indexProjectFolders)
}
