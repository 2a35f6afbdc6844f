// Package cli implements the snapdeck command-line interface.
//
// This package provides commands for presenting TOML slide decks in the
// terminal, serving a deck over HTTP for remote control, and validating
// deck files. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - present: Run a deck as an interactive terminal carousel
//   - serve: Expose a deck through an HTTP control surface
//   - check: Validate a deck file and print a summary
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/snapdeck/snapdeck/pkg/buildinfo"
	"github.com/snapdeck/snapdeck/pkg/statestore"
)

// appName is the application name used for directories and display.
const appName = "snapdeck"

// Execute runs the snapdeck CLI. The context carries cancellation from the
// process signal handler; a logger configured by --verbose is attached to
// the command context for all subcommands.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Snapdeck presents TOML slide decks as terminal carousels",
		Long:         `Snapdeck is a terminal presentation tool. It loads a slide deck from a TOML manifest and presents it as a swipeable, snap-aligned carousel, either interactively in the terminal or headless behind an HTTP control surface.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPresentCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// =============================================================================
// State Store Selection
// =============================================================================

// storeFlags are the persistence flags shared by present and serve.
type storeFlags struct {
	stateDir  string
	redisAddr string
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.stateDir, "state-dir", "", "directory for saved positions (default: XDG state dir)")
	cmd.Flags().StringVar(&f.redisAddr, "redis", "", "redis address for saved positions (overrides --state-dir)")
}

// open picks a backend from the flags: redis when --redis is set, otherwise
// JSON files under --state-dir or the XDG default.
func (f *storeFlags) open(ctx context.Context) (statestore.Store, error) {
	if f.redisAddr != "" {
		return statestore.NewRedisStore(ctx, statestore.RedisConfig{Addr: f.redisAddr})
	}
	dir := f.stateDir
	if dir == "" {
		var err error
		dir, err = stateDir()
		if err != nil {
			return nil, err
		}
	}
	return statestore.NewFileStore(dir)
}

// stateDir returns the position directory using the XDG convention
// (~/.local/state/snapdeck/).
func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// deckKey identifies a deck in the state store. The absolute path keeps
// positions stable across working directories.
func deckKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
