package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/codesearch"
)

// Ensure LoggingResolver implements codesearch.SettingsResolver.
var _ codesearch.SettingsResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a SettingsResolver with logging.
type LoggingResolver struct {
	next   codesearch.SettingsResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next codesearch.SettingsResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// ResolveSettings delegates to the wrapped resolver and logs the result.
func (r *LoggingResolver) ResolveSettings(project *codesearch.ProjectData, projectFile string, indexProjectFolders bool) (s *codesearch.Settings, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"project", projectFile,
			"index_folders", indexProjectFolders,
			"duration", time.Since(begin),
		}
		if s != nil {
			attrs = append(attrs,
				"folders", len(s.PathsToIndex),
				"excludes", len(s.PathsToExclude),
			)
			if s.IndexFilename != nil {
				attrs = append(attrs, "index_file", *s.IndexFilename)
			}
		}
		if err != nil {
			r.logger.Error("resolve settings", append(attrs, "err", err)...)
			return
		}
		r.logger.Info("resolve settings", attrs...)
	}(time.Now())
	return r.next.ResolveSettings(project, projectFile, indexProjectFolders)
}
