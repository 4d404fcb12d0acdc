package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/theme"
)

type registrySource struct {
	registry *theme.Registry
}

func (s registrySource) Names() []string {
	return s.registry.Names()
}

func (s registrySource) Resolve(name string) (domain.ThemeConfig, domain.ResolvedTheme) {
	config := s.registry.Lookup(name)
	return config, theme.Resolve(config)
}

func newTestPicker(t *testing.T, current string) *Picker {
	t.Helper()
	return NewPicker(registrySource{registry: theme.NewBuiltinRegistry()}, current, "Themes")
}

func typeText(p *Picker, text string) {
	for _, r := range text {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewPicker_StartsOnCurrentTheme(t *testing.T) {
	tests := []struct {
		current  string
		expected string
	}{
		{"music", "music"},
		{"dark", "dark"},
		{"", "default"},
		{"unknown", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			p := newTestPicker(t, tt.current)

			name, ok := p.Highlighted()
			require.True(t, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestPicker_Navigation(t *testing.T) {
	p := newTestPicker(t, "")

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	name, _ := p.Highlighted()
	assert.Equal(t, "dark", name)

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	name, _ = p.Highlighted()
	assert.Equal(t, "music", name, "cursor stops at the last theme")

	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	name, _ = p.Highlighted()
	assert.Equal(t, "default", name, "cursor stops at the first theme")
}

func TestPicker_Select(t *testing.T) {
	p := newTestPicker(t, "dark")

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, p.Completed)
	assert.False(t, p.Result.Cancelled)
	assert.Equal(t, "dark", p.Result.Name)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPicker_Filter(t *testing.T) {
	p := newTestPicker(t, "")

	typeText(p, "mu")
	assert.Equal(t, []string{"music"}, p.Names())

	name, ok := p.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "music", name)

	// esc with a filter clears it instead of quitting
	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.Completed)
	assert.Equal(t, []string{"default", "dark", "music"}, p.Names())
}

func TestPicker_FilterWithoutMatches(t *testing.T) {
	p := newTestPicker(t, "")

	typeText(p, "zzz")
	assert.Empty(t, p.Names())

	_, ok := p.Highlighted()
	assert.False(t, ok)

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.Completed, "nothing to select")
	assert.Contains(t, p.View(), "No matching themes")
}

func TestPicker_Cancel(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPicker(t, "")

			p.Update(tt.msg)
			assert.True(t, p.Completed)
			assert.True(t, p.Result.Cancelled)
			assert.Empty(t, p.Result.Name)
		})
	}
}

func TestPicker_ViewShowsHighlightedPreview(t *testing.T) {
	p := newTestPicker(t, "music")

	view := p.View()
	assert.Contains(t, view, "Themes")
	assert.Contains(t, view, "#9c27b0")
	assert.Contains(t, view, "surface.paper")
}
