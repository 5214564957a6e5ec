package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/codesearch"
	csslog "github.com/fwojciec/codesearch/slog"
	"github.com/stretchr/testify/assert"
)

func TestObserver_Observe(t *testing.T) {
	t.Parallel()

	t.Run("logs events at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		observer := csslog.NewObserver(logger)
		observer.Observe(codesearch.Event{
			Kind:        codesearch.EventExclude,
			ProjectFile: "/home/u/proj/p.sublime-project",
			Path:        "/home/u/proj/rel/dir",
		})

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "msg=resolve.exclude")
		assert.Contains(t, output, "path=/home/u/proj/rel/dir")
	})

	t.Run("drops events below handler level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		csslog.NewObserver(logger).Observe(codesearch.Event{Kind: codesearch.EventFolder, Path: "/x"})

		assert.Empty(t, buf.String())
	})
}
