// Package search provides the window search view for the TUI.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/helix/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SequenceInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context
	topK          int
	previewLen    int

	width      int
	height     int
	ready      bool
	err        error
	searched   bool
	focusInput bool // true = input mode (typing), false = results mode (navigating)
	detail     bool // show the full window of the selected hit
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	in := input.NewSequenceInput(s, "Query")
	in.SetPlaceholder("Paste a DNA sequence...")

	return &View{
		styles:        s,
		keymap:        km,
		input:         in,
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		topK:          domain.DefaultTopK,
		previewLen:    domain.DefaultPreviewLen,
		width:         80,
		height:        24,
		focusInput:    true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithQueryDefaults sets the top-K and preview length used for searches.
// Non-positive values leave the current setting unchanged.
func (v *View) WithQueryDefaults(topK, previewLen int) *View {
	if topK > 0 {
		v.topK = topK
	}
	if previewLen > 0 {
		v.previewLen = previewLen
	}
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusInput {
		v.input, cmd = v.input.Update(msg)
	}
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if v.detail {
			v.detail = false
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if v.focusInput {
		if msg.Type == tea.KeyEnter {
			return v, v.submit()
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	if msg.Type == tea.KeyEnter {
		v.detail = !v.detail && v.list.SelectedHit() != nil
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		v.detail = false
		v.input.SetValue("")
		return v, v.input.Focus()
	}

	return v, nil
}

// submit starts a search for the current input.
func (v *View) submit() tea.Cmd {
	bases := strings.TrimSpace(v.input.Value())
	if bases == "" {
		return nil
	}
	v.statusbar.SetState(status.StateSearching)
	v.focusInput = false
	v.input.Blur()
	return v.performSearch(domain.Query{Bases: bases, TopK: v.topK, PreviewLen: v.previewLen})
}

// performSearch runs the search and reports the outcome as a message.
func (v *View) performSearch(query domain.Query) tea.Cmd {
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		result, err := v.searchService.Search(v.ctx, query)
		return messages.SearchCompleted{Result: result, Err: err}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	v.searched = true
	v.detail = false
	if msg.Err != nil {
		v.list.SetHits(nil)
		v.setError(msg.Err)
		// Let the user fix the query.
		v.focusInput = true
		v.input.Focus()
		return
	}

	v.err = nil
	v.list.SetHits(msg.Result.Results)
	v.statusbar.SetMessage("")
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(len(msg.Result.Results))
	v.focusInput = false
	v.input.Blur()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("Search"),
		v.styles.Muted.Render(fmt.Sprintf("top %d, preview %d bases", v.topK, v.previewLen)),
		"",
		v.input.View(),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	switch {
	case v.detail:
		sections = append(sections, v.renderDetail())
	case v.searched && v.err == nil && v.list.IsEmpty():
		sections = append(sections, v.styles.Muted.Render("No reference produced a match"))
	case v.searched:
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDetail shows the selected hit with its full matched window.
func (v *View) renderDetail() string {
	hit := v.list.SelectedHit()
	if hit == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(hit.RecordID))
	b.WriteString("\n")
	if hit.Description != "" {
		b.WriteString(v.styles.Normal.Render(hit.Description))
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Muted.Render(list.Annotation(hit)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "window      [%d, %d)\n", hit.Start, hit.End)
	fmt.Fprintf(&b, "similarity  %.4f (%d/%d)\n\n", hit.Similarity, hit.Score, hit.WindowLen)
	b.WriteString(wrap(v.styles, hit.MatchedBases, v.width-6))

	return v.styles.Border.Padding(0, 1).Render(b.String())
}

// wrap colours seq and breaks it into lines of at most width bases.
func wrap(s *styles.Styles, seq string, width int) string {
	if width < 10 {
		width = 10
	}
	lines := make([]string, 0, len(seq)/width+1)
	for len(seq) > width {
		lines = append(lines, s.Sequence(seq[:width]))
		seq = seq[width:]
	}
	lines = append(lines, s.Sequence(seq))
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the query text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Hits returns the current ranked hits.
func (v *View) Hits() []domain.RankedHit {
	return v.list.Hits()
}

// SelectedIndex returns the index of the selected hit.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.detail = false
	v.searched = false
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetHits(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// DetailVisible returns whether the hit detail panel is shown.
func (v *View) DetailVisible() bool {
	return v.detail
}
