// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/helix/internal/core/domain"
)

// SearchRequested is a command to run a window search.
type SearchRequested struct {
	Query domain.Query
}

// SearchCompleted carries a search result back to the model.
type SearchCompleted struct {
	Result domain.SearchResult
	Err    error
}

// AlignRequested is a command to align two sequences.
type AlignRequested struct {
	Mode domain.AlignMode
	A    string
	B    string
}

// AlignCompleted carries an alignment back to the model.
// Alignment is nil when a local alignment found nothing scoring above zero.
type AlignCompleted struct {
	Mode      domain.AlignMode
	Alignment *domain.Alignment
	Rendered  string
	Err       error
}

// StatusLoaded carries reference store status and a sample of record IDs.
type StatusLoaded struct {
	Status domain.StoreStatus
	IDs    []string
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the window search view.
	ViewSearch
	// ViewAlign is the pairwise alignment view.
	ViewAlign
	// ViewStatus shows the reference store status.
	ViewStatus
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewAlign:
		return "align"
	case ViewStatus:
		return "status"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred reports an error to display.
type ErrorOccurred struct {
	Err error
}

// Quit requests application exit.
type Quit struct{}
