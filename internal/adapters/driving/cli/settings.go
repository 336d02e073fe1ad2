package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change helix settings",
	Long: `View and change helix settings.

Without a subcommand, prints the current settings. Use "settings set" to
change a single key, or "settings backend" to pick the reference store
interactively.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Long: `Change a single setting.

Keys:
  store.backend        fasta | sqlite
  store.fasta_path     reference FASTA file
  store.data_dir       SQLite catalogue directory
  search.workers       goroutines scanning references
  search.preview_len   default preview length
  search.top_k         default number of hits
  http.addr            listen address for "serve"
  http.rate_limit      requests per second, 0 disables
  http.allow_origins   comma-separated CORS origins`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsBackendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Choose the reference store interactively",
	Args:  cobra.NoArgs,
	RunE:  runSettingsBackend,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsBackendCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "[Store]")
	fmt.Fprintf(out, "  %-20s %s (%s)\n", services.KeyStoreBackend, settings.Store.Backend, settings.Store.Backend.Description())
	fmt.Fprintf(out, "  %-20s %s\n", services.KeyStoreFASTAPath, orDash(settings.Store.FASTAPath))
	fmt.Fprintf(out, "  %-20s %s\n", services.KeyStoreDataDir, orDash(settings.Store.DataDir))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[Search]")
	fmt.Fprintf(out, "  %-20s %d\n", services.KeySearchWorkers, settings.Search.Workers)
	fmt.Fprintf(out, "  %-20s %d\n", services.KeySearchPreviewLen, settings.Search.PreviewLen)
	fmt.Fprintf(out, "  %-20s %d\n", services.KeySearchTopK, settings.Search.TopK)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[HTTP]")
	fmt.Fprintf(out, "  %-20s %s\n", services.KeyHTTPAddr, settings.HTTP.Addr)
	fmt.Fprintf(out, "  %-20s %g\n", services.KeyHTTPRateLimit, settings.HTTP.RateLimit)
	fmt.Fprintf(out, "  %-20s %s\n", services.KeyHTTPAllowOrigins, orDash(strings.Join(settings.HTTP.AllowOrigins, ",")))

	if err := settingsService.Validate(); err != nil {
		fmt.Fprintf(out, "\nWarning: %v\n", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runSettingsBackend(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "Select Reference Store")
	fmt.Fprintln(out, "----------------------")
	backends := domain.AllStoreBackends()
	defaultIdx := 1
	for i, b := range backends {
		marker := " "
		if b == current.Store.Backend {
			marker = "*"
			defaultIdx = i + 1
		}
		fmt.Fprintf(out, " %s%d. %s\n", marker, i+1, b.Description())
	}
	fmt.Fprintf(out, "\nEnter choice [%d]: ", defaultIdx)
	selected := backends[parseChoice(readLine(reader), len(backends), defaultIdx)-1]

	if err := settingsService.Set(services.KeyStoreBackend, selected.String()); err != nil {
		return fmt.Errorf("failed to set backend: %w", err)
	}

	if selected == domain.StoreBackendFASTA {
		fmt.Fprintf(out, "FASTA path [%s]: ", current.Store.FASTAPath)
		if path := readLine(reader); path != "" {
			if err := settingsService.Set(services.KeyStoreFASTAPath, path); err != nil {
				return fmt.Errorf("failed to set FASTA path: %w", err)
			}
		}
	}

	fmt.Fprintf(out, "Reference store set to: %s\n", selected.Description())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
