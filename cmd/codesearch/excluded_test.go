package main_test

import (
	"testing"

	"github.com/fwojciec/codesearch"
	main "github.com/fwojciec/codesearch/cmd/codesearch"
	"github.com/fwojciec/codesearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludedCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports each path", func(t *testing.T) {
		t.Parallel()

		var gotExcludes []string
		deps, stdout, _ := testDeps(emptyLoader(), settingsPerProject())
		deps.NewFilter = func(excludes []string) codesearch.PathFilter {
			gotExcludes = excludes
			return &mock.PathFilter{
				ExcludedFn: func(path string) (bool, error) {
					return path == "/p/vendor/x.go", nil
				},
			}
		}

		err := (&main.ExcludedCmd{Project: "/p/a.kdl", Paths: []string{"/p/vendor/x.go", "/p/src/y.go"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"/p/vendor"}, gotExcludes)
		assert.Equal(t, "excluded  /p/vendor/x.go\nincluded  /p/src/y.go\n", stdout.String())
	})

	t.Run("reports filter error", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(emptyLoader(), settingsPerProject())
		deps.NewFilter = func([]string) codesearch.PathFilter {
			return &mock.PathFilter{
				ExcludedFn: func(string) (bool, error) {
					return false, codesearch.Errorf(codesearch.EINVALID, "invalid exclude pattern %q", "[")
				},
			}
		}

		err := (&main.ExcludedCmd{Project: "/p/a.kdl", Paths: []string{"/p/x"}}).Run(deps)

		assert.Equal(t, codesearch.EINVALID, codesearch.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid exclude pattern")
	})
}
