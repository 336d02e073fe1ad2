// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/helix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/helix/internal/core/domain"
)

// ResultList displays ranked window-search hits in a navigable list.
type ResultList struct {
	hits     []domain.RankedHit
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.hits) == 0 {
		return r.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(r.hits)+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Matches (%d)", len(r.hits))), "")

	// Each hit takes three lines.
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.hits) {
		end = len(r.hits)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderHit(i, &r.hits[i]))
	}

	return strings.Join(lines, "\n")
}

// renderHit formats one hit: record and similarity, annotation, preview.
func (r *ResultList) renderHit(index int, hit *domain.RankedHit) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	id := hit.RecordID
	maxIDLen := r.width - 16
	if maxIDLen < 10 {
		maxIDLen = 10
	}
	if len(id) > maxIDLen {
		id = id[:maxIDLen-3] + "..."
	}
	sim := fmt.Sprintf("%5.1f%%", hit.Similarity*100)

	var head string
	if index == r.selected {
		head = r.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxIDLen, id, sim))
	} else {
		head = r.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxIDLen, id)) +
			r.styles.Muted.Render(sim)
	}

	annotation := Annotation(hit)
	info := r.styles.Subtitle.Render("    "+annotation) +
		r.styles.Muted.Render(fmt.Sprintf("  [%d:%d]", hit.Start, hit.End))

	preview := "    " + r.styles.Sequence(hit.Preview)

	return head + "\n" + info + "\n" + preview
}

// Annotation joins organism and gene name, or reports that neither is known.
func Annotation(hit *domain.RankedHit) string {
	parts := make([]string, 0, 2)
	if hit.Organism != "" {
		parts = append(parts, hit.Organism)
	}
	if hit.GeneName != "" {
		parts = append(parts, hit.GeneName)
	}
	if len(parts) == 0 {
		return "(unannotated)"
	}
	return strings.Join(parts, " / ")
}

// SetHits updates the list and resets the selection.
func (r *ResultList) SetHits(hits []domain.RankedHit) {
	r.hits = hits
	r.selected = 0
}

// Hits returns the current hits.
func (r *ResultList) Hits() []domain.RankedHit {
	return r.hits
}

// Selected returns the index of the selected hit.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.hits) {
		r.selected = index
	}
}

// SelectedHit returns the currently selected hit, or nil if none.
func (r *ResultList) SelectedHit() *domain.RankedHit {
	if r.selected < 0 || r.selected >= len(r.hits) {
		return nil
	}
	return &r.hits[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.hits)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of hits.
func (r *ResultList) Count() int {
	return len(r.hits)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.hits) == 0
}
