package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/codesearch"
	"github.com/fwojciec/codesearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProjects_RepeatedProjectGetsItsOwnCopy(t *testing.T) {
	t.Parallel()

	// Given a project named twice on the command line
	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &bytes.Buffer{},
		Stderr: &bytes.Buffer{},
		Loader: &mock.ProjectLoader{
			LoadProjectFn: func(string) (*codesearch.ProjectData, error) {
				return &codesearch.ProjectData{}, nil
			},
		},
		Resolver: &mock.SettingsResolver{
			ResolveSettingsFn: func(*codesearch.ProjectData, string, bool) (*codesearch.Settings, error) {
				return codesearch.NewSettings("csearch", "cindex", nil, []string{"/p/src"}, nil), nil
			},
		},
	}

	// When the projects are resolved
	results, err := resolveProjects(deps, []string{"/p/a.kdl", "/p/a.kdl"}, true)

	// Then both entries hold equal settings that share no memory
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NotSame(t, results[0].Settings, results[1].Settings)
	assert.True(t, results[0].Settings.Equal(results[1].Settings))
	assert.Equal(t, results[0].Fingerprint, results[1].Fingerprint)

	results[0].Settings.PathsToIndex[0] = "/mutated"
	assert.Equal(t, "/p/src", results[1].Settings.PathsToIndex[0])
}
