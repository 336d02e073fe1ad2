// Package align provides the pairwise alignment view for the TUI.
package align

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/helix/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// ErrNoAlignService indicates that no align service was provided.
var ErrNoAlignService = errors.New("align service is required")

// View holds two sequence inputs and the last alignment.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	inputs    [2]*input.SequenceInput
	focus     int
	statusbar *status.Bar

	alignService driving.AlignService
	ctx          context.Context
	mode         domain.AlignMode

	result *messages.AlignCompleted
	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new alignment view in global mode.
func NewView(s *styles.Styles, km *keymap.KeyMap, alignService driving.AlignService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	a := input.NewSequenceInput(s, "Sequence A")
	b := input.NewSequenceInput(s, "Sequence B")
	b.Blur()

	bar := status.NewBar(s, km)
	bar.SetHints(km.AlignHelp())

	return &View{
		styles:       s,
		keymap:       km,
		inputs:       [2]*input.SequenceInput{a, b},
		statusbar:    bar,
		alignService: alignService,
		ctx:          context.Background(),
		mode:         domain.AlignGlobal,
		width:        80,
		height:       24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.inputs[v.focus].Init()
}

// Update handles messages for the alignment view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AlignCompleted:
		v.handleAlignCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case msg.Type == tea.KeyEnter:
		return v, v.submit()
	case keymap.Matches(msg.String(), v.keymap.NextField):
		return v, v.switchFocus()
	case keymap.Matches(msg.String(), v.keymap.ToggleMode):
		v.ToggleMode()
		return v, nil
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return v, cmd
}

func (v *View) switchFocus() tea.Cmd {
	v.inputs[v.focus].Blur()
	v.focus = 1 - v.focus
	return v.inputs[v.focus].Focus()
}

// ToggleMode switches between global and local alignment.
func (v *View) ToggleMode() {
	if v.mode == domain.AlignGlobal {
		v.mode = domain.AlignLocal
	} else {
		v.mode = domain.AlignGlobal
	}
}

// submit starts an alignment once both sequences are present.
func (v *View) submit() tea.Cmd {
	a := strings.TrimSpace(v.inputs[0].Value())
	b := strings.TrimSpace(v.inputs[1].Value())
	if a == "" || b == "" {
		if a == "" {
			v.focusOn(0)
		} else {
			v.focusOn(1)
		}
		v.statusbar.SetMessage("Enter both sequences")
		return nil
	}

	v.statusbar.SetState(status.StateAligning)
	return v.performAlign(messages.AlignRequested{Mode: v.mode, A: a, B: b})
}

func (v *View) focusOn(i int) {
	v.inputs[v.focus].Blur()
	v.focus = i
	v.inputs[i].Focus()
}

// performAlign runs the alignment and reports the outcome as a message.
func (v *View) performAlign(req messages.AlignRequested) tea.Cmd {
	return func() tea.Msg {
		if v.alignService == nil {
			return messages.ErrorOccurred{Err: ErrNoAlignService}
		}

		out := messages.AlignCompleted{Mode: req.Mode}
		if req.Mode == domain.AlignLocal {
			aln, err := v.alignService.Local(v.ctx, req.A, req.B)
			if err != nil {
				out.Err = err
				return out
			}
			out.Alignment = aln
		} else {
			aln, err := v.alignService.Global(v.ctx, req.A, req.B)
			if err != nil {
				out.Err = err
				return out
			}
			out.Alignment = &aln
		}
		if out.Alignment != nil {
			out.Rendered = v.alignService.Render(*out.Alignment)
		}
		return out
	}
}

func (v *View) handleAlignCompleted(msg messages.AlignCompleted) {
	if msg.Err != nil {
		v.result = nil
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.result = &msg
	v.statusbar.SetState(status.StateAligned)
	if msg.Alignment == nil {
		v.statusbar.SetMessage("No local alignment")
		return
	}
	v.statusbar.SetMessage(fmt.Sprintf("%s score %g", msg.Mode, msg.Alignment.Score))
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the alignment view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections,
		v.styles.Title.Render("Align")+"  "+v.renderMode(),
		"",
		v.inputs[0].View(),
		v.inputs[1].View(),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.result != nil {
		sections = append(sections, v.renderResult())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderMode() string {
	modes := []domain.AlignMode{domain.AlignGlobal, domain.AlignLocal}
	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		if m == v.mode {
			parts = append(parts, v.styles.Selected.Render(" "+m.String()+" "))
		} else {
			parts = append(parts, v.styles.Muted.Render(" "+m.String()+" "))
		}
	}
	return strings.Join(parts, "")
}

// renderResult colours the rendered alignment and adds a summary line.
func (v *View) renderResult() string {
	if v.result.Alignment == nil {
		return v.styles.Muted.Render("No pair of substrings scores above zero")
	}

	aln := v.result.Alignment
	lines := strings.Split(strings.TrimRight(v.result.Rendered, "\n"), "\n")
	if len(lines) >= 3 {
		lines[0] = v.styles.Sequence(lines[0])
		lines[1] = v.styles.Success.Render(lines[1])
		lines[2] = v.styles.Sequence(lines[2])
	}

	summary := fmt.Sprintf("columns %d  matches %d  gaps %d  A[%d:%d]  B[%d:%d]",
		aln.Len(), aln.Matches(), aln.Gaps(), aln.StartA, aln.EndA, aln.StartB, aln.EndB)

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n")) + "\n" +
		v.styles.Muted.Render(summary)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	for _, in := range v.inputs {
		in.SetWidth(width)
	}
	v.statusbar.SetWidth(width)
}

// SetSequences sets both input values.
func (v *View) SetSequences(a, b string) {
	v.inputs[0].SetValue(a)
	v.inputs[1].SetValue(b)
}

// Sequences returns both input values.
func (v *View) Sequences() (string, string) {
	return v.inputs[0].Value(), v.inputs[1].Value()
}

// Mode returns the current alignment mode.
func (v *View) Mode() domain.AlignMode {
	return v.mode
}

// Focus returns the index of the focused input.
func (v *View) Focus() int {
	return v.focus
}

// Result returns the last completed alignment, or nil.
func (v *View) Result() *messages.AlignCompleted {
	return v.result
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Reset clears inputs and results and returns to global mode.
func (v *View) Reset() {
	for _, in := range v.inputs {
		in.Reset()
	}
	v.focusOn(0)
	v.mode = domain.AlignGlobal
	v.result = nil
	v.err = nil
	v.statusbar.Clear()
	v.statusbar.SetHints(v.keymap.AlignHelp())
}
