// Package status provides the reference store status view for the TUI.
package status

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/helix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// SampleSize is the number of record IDs listed under the status.
const SampleSize = 10

// View shows the loaded reference store and a sample of its record IDs.
type View struct {
	styles     *styles.Styles
	references driving.ReferenceService
	ctx        context.Context

	loaded  *messages.StatusLoaded
	loading bool
	width   int
	height  int
	ready   bool
}

// NewView creates a new status view. references may be nil.
func NewView(s *styles.Styles, references driving.ReferenceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:     s,
		references: references,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the store status.
func (v *View) Init() tea.Cmd {
	if v.references == nil {
		return nil
	}
	v.loading = true
	return v.load()
}

func (v *View) load() tea.Cmd {
	return func() tea.Msg {
		st, err := v.references.Status(v.ctx)
		if err != nil {
			return messages.StatusLoaded{Err: err}
		}
		ids, err := v.references.List(v.ctx, SampleSize)
		return messages.StatusLoaded{Status: st, IDs: ids, Err: err}
	}
}

// Update handles messages for the status view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case messages.StatusLoaded:
		v.loading = false
		v.loaded = &msg

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case "r":
			return v, v.Init()
		}
	}
	return v, nil
}

// View renders the status view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Reference store"))
	b.WriteString("\n\n")

	switch {
	case v.references == nil:
		b.WriteString(v.styles.Muted.Render("No reference service configured"))
	case v.loading || v.loaded == nil:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.loaded.Err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.loaded.Err.Error()))
	default:
		v.renderStatus(&b)
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[r] Refresh  [esc] Back"))
	return b.String()
}

func (v *View) renderStatus(b *strings.Builder) {
	st := v.loaded.Status
	exists := v.styles.Success.Render("yes")
	if !st.Exists {
		exists = v.styles.Warning.Render("no")
	}

	fmt.Fprintf(b, "backend   %s\n", st.Backend)
	fmt.Fprintf(b, "path      %s\n", st.Path)
	fmt.Fprintf(b, "exists    %s\n", exists)
	fmt.Fprintf(b, "records   %d\n", st.Records)

	if len(v.loaded.IDs) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("First %d records", len(v.loaded.IDs))))
	for _, id := range v.loaded.IDs {
		b.WriteString("\n  " + id)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Loaded returns the last status message, or nil.
func (v *View) Loaded() *messages.StatusLoaded {
	return v.loaded
}
