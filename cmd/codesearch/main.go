package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/codesearch"
	"github.com/fwojciec/codesearch/doublestar"
	"github.com/fwojciec/codesearch/exec"
	csslog "github.com/fwojciec/codesearch/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Defaults is the lowest global settings layer, consulted when the
	// settings file does not set a key.
	Defaults codesearch.GlobalSettings

	// Getenv and HomeDir locate the default settings file.
	Getenv  func(string) string
	HomeDir func() (string, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Defaults: exec.NewDefaultSettings(),
		Getenv:   os.Getenv,
		HomeDir:  os.UserHomeDir,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("codesearch"),
		kong.Description("Resolve csearch/cindex settings for editor projects."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'codesearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	global, err := m.loadGlobalSettings(cli.Settings)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set CODESEARCH_SETTINGS or pass --settings to use a different settings file")
		return fmt.Errorf("failed to load settings: %w", err)
	}

	resolver := codesearch.NewResolver(global)
	resolver.Observer = csslog.NewObserver(logger)

	deps.Loader = NewFileLoader()
	deps.Resolver = csslog.NewLoggingResolver(resolver, logger)
	deps.NewFilter = func(excludes []string) codesearch.PathFilter {
		return doublestar.NewExcludeMatcher(excludes)
	}

	return kongCtx.Run(deps)
}
