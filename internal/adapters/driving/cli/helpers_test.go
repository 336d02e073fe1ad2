package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/helix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/services"
)

func testReferences() []domain.ReferenceSequence {
	return []domain.ReferenceSequence{
		{
			ID:          "r1",
			Organism:    "Homo sapiens",
			GeneName:    "BRCA1",
			Description: "r1 Homo sapiens (BRCA1)",
			Bases:       "TTTTACGTTTTT",
		},
		{ID: "r2", Organism: "Mus musculus", Description: "r2 Mus musculus", Bases: "ACGAAAAA"},
		{ID: "r3", Description: "r3", Bases: "GGGG"},
	}
}

// setupTestServices installs real services over an in-memory store and
// returns a function restoring the previous state.
func setupTestServices() func() {
	prevSearch, prevAlign, prevRefs, prevSettings := searchService, alignService, referenceService, settingsService
	prevBootstrap := bootstrap

	store := memoryStore(testReferences()...)
	SetServices(&Services{
		Search:     services.NewSearchService(store, 2),
		Align:      services.NewAlignService(),
		References: services.NewReferenceService(store),
		Settings:   services.NewSettingsService(memory.NewConfigStore()),
	})
	bootstrap = nil

	return func() {
		searchService, alignService, referenceService, settingsService = prevSearch, prevAlign, prevRefs, prevSettings
		bootstrap = prevBootstrap
		closeFn = nil
	}
}

// clearServices removes every service and returns a restore function.
func clearServices() func() {
	prevSearch, prevAlign, prevRefs, prevSettings := searchService, alignService, referenceService, settingsService
	searchService, alignService, referenceService, settingsService = nil, nil, nil, nil
	return func() {
		searchService, alignService, referenceService, settingsService = prevSearch, prevAlign, prevRefs, prevSettings
	}
}

// executeCommand runs the root command with args and returns its combined output.
// Flags are reset first because cobra keeps their values between runs.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func memoryStore(refs ...domain.ReferenceSequence) *memory.ReferenceStore {
	return memory.NewReferenceStore(refs...)
}
