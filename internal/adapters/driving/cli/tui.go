package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/helix/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for helix.

The TUI searches the loaded references for a DNA query, aligns two
sequences globally or locally, and reports on the reference store.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search / Align / Select
  Tab      - Switch input
  Ctrl+T   - Toggle alignment mode
  Esc      - Back / Cancel
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// runApp starts the program; replaced in tests.
var runApp = func(app *tui.App) error {
	return app.Run()
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if searchService == nil || alignService == nil {
		return fmt.Errorf("tui: %w", errNotConfigured)
	}

	app, err := tui.NewApp(tui.NewPorts(searchService, alignService, referenceService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if settingsService != nil {
		if settings, serr := settingsService.Get(); serr == nil {
			app.WithQueryDefaults(settings.Search.TopK, settings.Search.PreviewLen)
		}
	}

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
