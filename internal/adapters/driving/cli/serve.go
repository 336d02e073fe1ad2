package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/helix/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/helix/internal/core/domain"
)

var (
	serveAddr      string
	serveRateLimit float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON HTTP API.

Endpoints:
  GET  /              liveness message
  POST /search        {"sequence", "preview_len", "top_k"}
  POST /align-global  {"seq1", "seq2"}
  POST /align-local   {"seq1", "seq2"}
  GET  /db/status     reference store status
  GET  /db/records    first record IDs (?limit=10)

The listen address, rate limit and CORS origins default to the http.*
settings. The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings)")
	serveCmd.Flags().Float64Var(&serveRateLimit, "rate-limit", -1, "requests per second, 0 disables (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil || alignService == nil || referenceService == nil {
		return fmt.Errorf("services %w", errNotConfigured)
	}

	cfg := domain.DefaultAppSettings().HTTP
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			cfg = s.HTTP
		}
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveRateLimit >= 0 {
		cfg.RateLimit = serveRateLimit
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Search:     searchService,
		Align:      alignService,
		References: referenceService,
	}, httpapi.Options{
		AllowOrigins: cfg.AllowOrigins,
		RateLimit:    cfg.RateLimit,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(cfg.Addr); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "helix API listening on http://%s\n", server.Addr())

	<-ctx.Done()
	if err := server.Stop(); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
