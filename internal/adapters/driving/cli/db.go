package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// fastaLineWidth is the sequence line width used by db show.
const fastaLineWidth = 60

var (
	dbRecordsLimit int
	dbJSON         bool
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and manage the reference store",
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the reference store status",
	Args:  cobra.NoArgs,
	RunE:  runDBStatus,
}

var dbRecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List reference record IDs in store order",
	Args:  cobra.NoArgs,
	RunE:  runDBRecords,
}

var dbShowCmd = &cobra.Command{
	Use:   "show <record-id>",
	Short: "Print one reference as FASTA",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBShow,
}

var dbImportCmd = &cobra.Command{
	Use:   "import <fasta>",
	Short: "Copy a FASTA file into the SQLite catalogue",
	Long: `Parse a FASTA file (optionally gzip-compressed) and replace the contents
of the SQLite catalogue with its records in one transaction.

Set store.backend = "sqlite" to search the catalogue on later runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runDBImport,
}

func init() {
	dbCmd.PersistentFlags().BoolVar(&dbJSON, "json", false, "output as JSON")
	dbRecordsCmd.Flags().IntVarP(&dbRecordsLimit, "limit", "n", 10, "maximum number of IDs (0 = all)")
	dbCmd.AddCommand(dbStatusCmd, dbRecordsCmd, dbShowCmd, dbImportCmd)
	rootCmd.AddCommand(dbCmd)
}

func requireReferences() error {
	if referenceService == nil {
		return fmt.Errorf("reference service %w", errNotConfigured)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runDBStatus(cmd *cobra.Command, _ []string) error {
	if err := requireReferences(); err != nil {
		return err
	}

	st, err := referenceService.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("store status: %w", err)
	}

	if dbJSON {
		return writeJSON(cmd, map[string]any{
			"backend":    st.Backend,
			"fasta_path": st.Path,
			"exists":     st.Exists,
			"records":    st.Records,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Backend: %s\n", st.Backend)
	fmt.Fprintf(cmd.OutOrStdout(), "Path:    %s\n", st.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "Exists:  %t\n", st.Exists)
	fmt.Fprintf(cmd.OutOrStdout(), "Records: %d\n", st.Records)
	return nil
}

func runDBRecords(cmd *cobra.Command, _ []string) error {
	if err := requireReferences(); err != nil {
		return err
	}
	if dbRecordsLimit < 0 {
		return fmt.Errorf("--limit must not be negative: %w", domain.ErrInvalidInput)
	}

	ids, err := referenceService.List(cmd.Context(), dbRecordsLimit)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	if dbJSON {
		return writeJSON(cmd, map[string][]string{"keys": ids})
	}
	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}

func runDBShow(cmd *cobra.Command, args []string) error {
	if err := requireReferences(); err != nil {
		return err
	}

	ref, err := referenceService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if dbJSON {
		return writeJSON(cmd, map[string]any{
			"id":          ref.ID,
			"organism":    optional(ref.Organism),
			"gene_name":   optional(ref.GeneName),
			"description": ref.Description,
			"length":      len(ref.Bases),
			"sequence":    ref.Bases,
		})
	}

	header := ref.Description
	if header == "" {
		header = ref.ID
	}
	var b strings.Builder
	b.WriteString(">" + header + "\n")
	for seq := ref.Bases; len(seq) > 0; {
		n := min(fastaLineWidth, len(seq))
		b.WriteString(seq[:n] + "\n")
		seq = seq[n:]
	}
	fmt.Fprint(cmd.OutOrStdout(), b.String())
	return nil
}

func runDBImport(cmd *cobra.Command, args []string) error {
	if err := requireReferences(); err != nil {
		return err
	}

	n, err := referenceService.Import(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s\n", n, args[0])
	return nil
}
