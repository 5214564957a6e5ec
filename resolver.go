package codesearch

import "path/filepath"

// SettingsResolver produces the code search settings of a project.
type SettingsResolver interface {
	// ResolveSettings merges global tool settings with the project document.
	// Relative project paths are resolved against the directory holding
	// projectFile. When indexProjectFolders is set, the project's folders
	// become the paths to index.
	// Returns EINVALID if a required global setting is missing.
	ResolveSettings(project *ProjectData, projectFile string, indexProjectFolders bool) (*Settings, error)
}

// Ensure Resolver implements SettingsResolver.
var _ SettingsResolver = (*Resolver)(nil)

// Resolver is the default SettingsResolver. It holds no per-project state
// and is safe for concurrent use if Global and Observer are.
type Resolver struct {
	Global     GlobalSettings
	Normalizer PathNormalizer

	// Observer receives diagnostic events. Optional.
	Observer Observer
}

// NewResolver returns a Resolver reading executable paths from global.
func NewResolver(global GlobalSettings) *Resolver {
	return &Resolver{Global: global}
}

// ResolveSettings implements SettingsResolver. The index file is not
// required to exist.
func (r *Resolver) ResolveSettings(project *ProjectData, projectFile string, indexProjectFolders bool) (*Settings, error) {
	r.emit(EventResolveStart, projectFile, projectFile)
	if project == nil {
		project = &ProjectData{}
	}

	searchPath, err := r.required(KeySearchPath)
	if err != nil {
		return nil, err
	}
	indexPath, err := r.required(KeyIndexPath)
	if err != nil {
		return nil, err
	}

	projectDir := filepath.Dir(projectFile)
	s := &Settings{
		SearchExecutablePath: searchPath,
		IndexExecutablePath:  indexPath,
		PathsToIndex:         []string{},
		PathsToExclude:       []string{},
	}

	if cs := project.CodeSearch; cs != nil {
		if cs.CSearchIndex != nil {
			indexFilename := r.Normalizer.Normalize(*cs.CSearchIndex, projectDir)
			s.IndexFilename = &indexFilename
			r.emit(EventIndexFile, projectFile, indexFilename)
		}
		for _, excluded := range cs.Exclude {
			excluded = r.Normalizer.Normalize(excluded, projectDir)
			r.emit(EventExclude, projectFile, excluded)
			s.PathsToExclude = append(s.PathsToExclude, excluded)
		}
	}

	if indexProjectFolders {
		r.emit(EventProjectDir, projectFile, projectDir)
		for _, folder := range project.Folders {
			path := r.Normalizer.Normalize(folder.Path, projectDir)
			r.emit(EventFolder, projectFile, path)
			s.PathsToIndex = append(s.PathsToIndex, path)
		}
	}

	return s, nil
}

func (r *Resolver) required(key string) (string, error) {
	if r.Global == nil {
		return "", Errorf(EINVALID, "global settings required")
	}
	v, ok := r.Global.Get(key)
	if !ok {
		return "", Errorf(EINVALID, "global setting %q required", key)
	}
	return v, nil
}

func (r *Resolver) emit(kind EventKind, projectFile, path string) {
	if r.Observer == nil {
		return
	}
	r.Observer.Observe(Event{Kind: kind, ProjectFile: projectFile, Path: path})
}
