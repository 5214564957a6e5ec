package main

import (
	"context"
	"io"

	"github.com/fwojciec/codesearch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Loader   codesearch.ProjectLoader
	Resolver codesearch.SettingsResolver

	// NewFilter builds the exclusion filter for resolved exclude paths.
	NewFilter func(excludes []string) codesearch.PathFilter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Settings string `short:"s" type:"path" help:"Global settings file (.toml or .sublime-settings)"`
	Verbose  bool   `short:"v" help:"Log resolution details to stderr"`

	Resolve  ResolveCmd  `cmd:"" help:"Resolve code search settings for project files"`
	Excluded ExcludedCmd `cmd:"" help:"Report whether paths are excluded from a project's index"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Projects     []string `arg:"" name:"project" type:"path" help:"Project file (.sublime-project, .yaml, .kdl)"`
	IndexFolders bool     `short:"i" help:"Index the project's folders"`
	Format       string   `short:"f" default:"text" enum:"text,json,env" help:"Output format (text, json, env)"`
}

// ExcludedCmd is the "excluded" subcommand.
type ExcludedCmd struct {
	Project string   `arg:"" type:"path" help:"Project file"`
	Paths   []string `arg:"" name:"path" type:"path" help:"Paths to check"`
}
