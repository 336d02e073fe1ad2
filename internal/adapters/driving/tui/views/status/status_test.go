package status

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/helix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/helix/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/services"
)

func newService(refs ...domain.ReferenceSequence) *services.ReferenceService {
	return services.NewReferenceService(memory.NewReferenceStore(refs...))
}

func load(t *testing.T, v *View) {
	t.Helper()
	cmd := v.Init()
	require.NotNil(t, cmd)
	v.Update(cmd())
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(80, 24)

	assert.Nil(t, v.Init())
	assert.Contains(t, v.View(), "No reference service configured")
}

func TestView_NotReady(t *testing.T) {
	assert.Equal(t, "Initialising...", NewView(nil, nil).View())
}

func TestView_LoadsStatus(t *testing.T) {
	v := NewView(nil, newService(
		domain.ReferenceSequence{ID: "r1", Bases: "ACGT"},
		domain.ReferenceSequence{ID: "r2", Bases: "GGGG"},
	))
	v.SetDimensions(80, 24)
	assert.NotNil(t, v.Init())
	assert.Contains(t, v.View(), "Loading...")

	load(t, v)

	require.NotNil(t, v.Loaded())
	require.NoError(t, v.Loaded().Err)
	assert.Equal(t, []string{"r1", "r2"}, v.Loaded().IDs)

	out := v.View()
	assert.Contains(t, out, "backend   memory")
	assert.Contains(t, out, "records   2")
	assert.Contains(t, out, "First 2 records")
	assert.Contains(t, out, "r2")
}

func TestView_StatusError(t *testing.T) {
	v := NewView(nil, newService()).WithContext(canceled())
	v.SetDimensions(80, 24)

	load(t, v)

	assert.ErrorIs(t, v.Loaded().Err, context.Canceled)
	assert.Contains(t, v.View(), "Error:")
}

func TestView_RefreshAndBack(t *testing.T) {
	v := NewView(nil, newService())
	v.SetDimensions(80, 24)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	assert.IsType(t, messages.StatusLoaded{}, cmd())

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func canceled() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
