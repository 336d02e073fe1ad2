package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/helix/internal/core/domain"
)

var (
	searchTopK       int
	searchPreviewLen int
	searchJSON       bool
)

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var searchCmd = &cobra.Command{
	Use:   "search <sequence>",
	Short: "Find the best-matching window in every reference",
	Long: `Slides a window the length of the query across every reference sequence,
keeps the best window of each reference, and prints the top hits ranked by
similarity (the fraction of positions where the bases are equal).

The query is trimmed and uppercased before matching. On a terminal the hits
are printed as a table; otherwise as tab-separated rows:

  record_id  organism  gene_name  start  end  similarity  preview`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of hits to return, 1-50 (default from settings)")
	searchCmd.Flags().IntVar(&searchPreviewLen, "preview-len", 0, "bases shown per preview (default from settings)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return fmt.Errorf("search service %w", errNotConfigured)
	}

	query := domain.DefaultQuery(args[0])
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			query.TopK = s.Search.TopK
			query.PreviewLen = s.Search.PreviewLen
		}
	}
	if searchTopK != 0 {
		query.TopK = searchTopK
	}
	if searchPreviewLen != 0 {
		query.PreviewLen = searchPreviewLen
	}

	result, err := searchService.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	switch {
	case searchJSON:
		return outputSearchJSON(cmd.OutOrStdout(), result)
	case isTerminal(cmd.OutOrStdout()):
		return outputSearchTable(cmd.OutOrStdout(), result)
	default:
		return outputSearchTSV(cmd.OutOrStdout(), result)
	}
}

type searchHitJSON struct {
	RecordID     string  `json:"matched_record_id"`
	Organism     *string `json:"organism"`
	GeneName     *string `json:"gene_name"`
	Description  string  `json:"description"`
	Start        int     `json:"start"`
	End          int     `json:"end"`
	Similarity   float64 `json:"similarity"`
	MatchPreview string  `json:"match_preview"`
	MatchFull    string  `json:"match_full"`
}

type searchResultJSON struct {
	Found   bool            `json:"found"`
	Results []searchHitJSON `json:"results"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func outputSearchJSON(w io.Writer, result domain.SearchResult) error {
	out := searchResultJSON{Found: result.Found, Results: make([]searchHitJSON, 0, len(result.Results))}
	for _, h := range result.Results {
		out.Results = append(out.Results, searchHitJSON{
			RecordID:     h.RecordID,
			Organism:     optional(h.Organism),
			GeneName:     optional(h.GeneName),
			Description:  h.Description,
			Start:        h.Start,
			End:          h.End,
			Similarity:   h.Similarity,
			MatchPreview: h.Preview,
			MatchFull:    h.MatchedBases,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func outputSearchTable(w io.Writer, result domain.SearchResult) error {
	if !result.Found {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tRECORD\tORGANISM\tGENE\tWINDOW\tSIMILARITY\tPREVIEW")
	for i, h := range result.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d-%d\t%.1f%%\t%s\n",
			i+1, h.RecordID, orDash(h.Organism), orDash(h.GeneName),
			h.Start, h.End, h.Similarity*100, h.Preview)
	}
	return tw.Flush()
}

func outputSearchTSV(w io.Writer, result domain.SearchResult) error {
	for _, h := range result.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%g\t%s\n",
			h.RecordID, h.Organism, h.GeneName, h.Start, h.End, h.Similarity, h.Preview)
	}
	return nil
}
