// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/helix/internal/adapters/driving/tui/styles"
)

// MaxSequenceLen caps the number of characters a sequence input accepts.
const MaxSequenceLen = 10000

// SequenceInput wraps a bubbles textinput for entering DNA sequences.
type SequenceInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewSequenceInput creates a focused sequence input with the given label.
func NewSequenceInput(s *styles.Styles, label string) *SequenceInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "ACGT..."
	ti.Focus()
	ti.CharLimit = MaxSequenceLen
	ti.Width = 50

	return &SequenceInput{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the input.
func (s *SequenceInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SequenceInput) Update(msg tea.Msg) (*SequenceInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the input. The label is highlighted while focused.
func (s *SequenceInput) View() string {
	labelStyle := s.styles.Muted
	if s.textinput.Focused() {
		labelStyle = s.styles.Title
	}
	label := labelStyle.Render(s.label + ": ")
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Label returns the input label.
func (s *SequenceInput) Label() string {
	return s.label
}

// Value returns the current input value.
func (s *SequenceInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SequenceInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// SetPlaceholder replaces the placeholder text.
func (s *SequenceInput) SetPlaceholder(p string) {
	s.textinput.Placeholder = p
}

// Focus sets focus on the input.
func (s *SequenceInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SequenceInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SequenceInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SequenceInput) SetWidth(width int) {
	s.width = width
	// Account for label and padding
	inputWidth := width - len(s.label) - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *SequenceInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SequenceInput) Reset() {
	s.textinput.Reset()
}
