package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/codesearch"
)

// Ensure Observer implements codesearch.Observer.
var _ codesearch.Observer = (*Observer)(nil)

// Observer logs resolution events at debug level.
type Observer struct {
	logger *slog.Logger
}

// NewObserver creates a new Observer.
func NewObserver(logger *slog.Logger) *Observer {
	return &Observer{logger: logger}
}

func (o *Observer) Observe(e codesearch.Event) {
	o.logger.LogAttrs(context.Background(), slog.LevelDebug, string(e.Kind),
		slog.String("project", e.ProjectFile),
		slog.String("path", e.Path),
	)
}
