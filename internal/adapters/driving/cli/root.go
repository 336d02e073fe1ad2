// Package cli provides the cobra command tree for helix.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core driving ports.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/helix/internal/core/ports/driving"
	"github.com/custodia-labs/helix/internal/logger"
)

// annotationSkipBootstrap marks commands that run without services.
const annotationSkipBootstrap = "helix/skip-bootstrap"

// GlobalOptions holds the root persistent flags.
type GlobalOptions struct {
	// ConfigPath overrides the config file location.
	ConfigPath string

	// FASTAPath loads references from this file, forcing the fasta backend.
	FASTAPath string

	// Verbose enables debug logging.
	Verbose bool
}

// Services holds the driving ports used by commands.
type Services struct {
	Search     driving.SearchService
	Align      driving.AlignService
	References driving.ReferenceService
	Settings   driving.SettingsService

	// Close releases store resources. Optional.
	Close func() error
}

// Bootstrap builds services once the root flags are parsed.
type Bootstrap func(ctx context.Context, opts GlobalOptions) (*Services, error)

var (
	version = "dev"

	globalOpts GlobalOptions
	bootstrap  Bootstrap
	closeFn    func() error

	searchService    driving.SearchService
	alignService     driving.AlignService
	referenceService driving.ReferenceService
	settingsService  driving.SettingsService
)

var errNotConfigured = errors.New("not configured")

var rootCmd = &cobra.Command{
	Use:   "helix",
	Short: "DNA window search and pairwise alignment",
	Long: `helix finds the best-matching window of a DNA query in every reference
sequence of a FASTA file or SQLite catalogue, ranks the hits by similarity,
and aligns pairs of sequences globally or locally.

It can be used from the command line, as an HTTP service, as an MCP server,
or through an interactive terminal UI.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeServices()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.ConfigPath, "config", "", "config file (default ~/.helix/config.toml)")
	flags.StringVar(&globalOpts.FASTAPath, "fasta", "", "reference FASTA file (overrides store settings)")
	flags.BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "enable debug logging")
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(globalOpts.Verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if bootstrap == nil || cmd.Annotations[annotationSkipBootstrap] == "true" {
		return nil
	}

	svc, err := bootstrap(cmd.Context(), globalOpts)
	if err != nil {
		return err
	}
	SetServices(svc)
	return nil
}

func closeServices() error {
	if closeFn == nil {
		return nil
	}
	fn := closeFn
	closeFn = nil
	return fn()
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs the services used by commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	searchService = s.Search
	alignService = s.Align
	referenceService = s.References
	settingsService = s.Settings
	closeFn = s.Close
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
