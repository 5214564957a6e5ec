// Package codesearch resolves per-project settings for an editor integration
// of the csearch/cindex code search tools. It locates the two executables,
// the optional index file, and the paths to index and exclude, normalizing
// every project path against the directory of the project file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., toml/, yaml/, kdl/, slog/).
package codesearch
