package doublestar_test

import (
	"testing"

	"github.com/fwojciec/codesearch"
	"github.com/fwojciec/codesearch/doublestar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludeMatcher_Excluded(t *testing.T) {
	t.Parallel()

	m := doublestar.NewExcludeMatcher([]string{
		"/home/u/proj/rel/dir",
		"/home/u/proj/**/node_modules",
		"/home/u/proj/*.log",
		"",
	})

	excluded := []string{
		"/home/u/proj/rel/dir",
		"/home/u/proj/rel/dir/",
		"/home/u/proj/rel/dir/sub/file.go",
		"/home/u/proj/web/node_modules",
		"/home/u/proj/web/node_modules/react/index.js",
		"/home/u/proj/build.log",
	}
	for _, path := range excluded {
		ok, err := m.Excluded(path)
		require.NoError(t, err, path)
		assert.True(t, ok, path)
	}

	included := []string{
		"/home/u/proj/rel/directory",
		"/home/u/proj/rel",
		"/home/u/proj/src/main.go",
		"/home/u/proj/logs/build.txt",
		"/other/node_modules",
	}
	for _, path := range included {
		ok, err := m.Excluded(path)
		require.NoError(t, err, path)
		assert.False(t, ok, path)
	}
}

func TestExcludeMatcher_RootEntry(t *testing.T) {
	t.Parallel()

	ok, err := doublestar.NewExcludeMatcher([]string{"/"}).Excluded("/anything/at/all")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestExcludeMatcher_NoEntries(t *testing.T) {
	t.Parallel()

	ok, err := doublestar.NewExcludeMatcher(nil).Excluded("/home/u/proj")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExcludeMatcher_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := doublestar.NewExcludeMatcher([]string{"/home/u/[proj"}).Excluded("/home/u/x")

	require.Error(t, err)
	assert.Equal(t, codesearch.EINVALID, codesearch.ErrorCode(err))
}
