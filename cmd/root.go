package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/doco-cli/internal/config"
	"github.com/KaramelBytes/doco-cli/internal/store"
	"github.com/KaramelBytes/doco-cli/internal/workspace"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "doco",
	Short: "doco CLI: organize, view and annotate your documents",
	Long:  `doco is a document workspace: organize uploaded files into folders, open them as tabbed documents, and annotate their pages. All state persists locally between runs.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.doco/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// openWorkspace loads the persistent workspace from the state database. The
// returned closer must be deferred by every command that uses it.
func openWorkspace() (*workspace.Workspace, func(), error) {
	if cfg == nil {
		return nil, nil, errors.New("configuration not loaded")
	}
	st, err := store.OpenBadger(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	fresh := false
	if _, err := st.Get(cfg.SnapshotKey); errors.Is(err, store.ErrNotFound) {
		fresh = true
	}
	ws := workspace.OpenKey(st, cfg.SnapshotKey, newLogger())
	if fresh {
		seedDefaults(ws)
	}
	return ws, func() { _ = st.Close() }, nil
}

// seedDefaults applies the configured preferences to a brand new workspace.
func seedDefaults(ws *workspace.Workspace) {
	tool := ws.ToolState()
	tool.Color = cfg.DefaultColor
	tool.Thickness = cfg.DefaultThickness
	ws.SetToolState(tool)

	ui := ws.UIState()
	ui.AutoSave = cfg.AutoSave
	if cfg.ViewMode == workspace.ViewSingle || cfg.ViewMode == workspace.ViewDouble {
		ui.ViewMode = cfg.ViewMode
	}
	ws.SetUIState(ui)
}
