package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/theme"
)

// maxVisibleThemes is the number of theme names shown at once
const maxVisibleThemes = 8

// ThemeSource provides the themes listed by the picker
type ThemeSource interface {
	Names() []string
	Resolve(name string) (domain.ThemeConfig, domain.ResolvedTheme)
}

// PickerResult contains the outcome of the picker interaction
type PickerResult struct {
	Cancelled bool
	Name      string
}

// Picker is a filterable theme list with a live preview of the
// highlighted theme
type Picker struct {
	Completed     bool
	Result        PickerResult
	allNames      []string
	filterInput   textinput.Model
	height        int
	keys          PickerKeys
	lastQuery     string
	names         []string // Filtered names
	selectedIndex int
	source        ThemeSource
	title         string
	width         int
}

// NewPicker creates a picker over source. The cursor starts on current
// when it is one of the listed names.
func NewPicker(source ThemeSource, current string, title string) *Picker {
	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.PromptStyle = theme.HelpKeyStyle
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = theme.VersionStyle
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 30

	names := source.Names()
	selected := 0
	for i, name := range names {
		if name == current {
			selected = i
			break
		}
	}

	return &Picker{
		allNames:      names,
		filterInput:   ti,
		keys:          NewPickerKeys(),
		names:         names,
		selectedIndex: selected,
		source:        source,
		title:         title,
	}
}

// Init initializes the picker
func (p *Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the picker
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.ForceQuit):
			return p.cancel()

		case key.Matches(msg, p.keys.ClearFilter):
			if p.filterInput.Value() != "" {
				p.filterInput.SetValue("")
				p.filterNames()
				return p, nil
			}
			return p.cancel()

		case key.Matches(msg, p.keys.Select):
			if name, ok := p.Highlighted(); ok {
				p.Completed = true
				p.Result.Name = name
				logging.Logger.Debug("Theme picked", "name", name)
				return p, tea.Quit
			}
			return p, nil

		case key.Matches(msg, p.keys.Up):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
			return p, nil

		case key.Matches(msg, p.keys.Down):
			if p.selectedIndex < len(p.names)-1 {
				p.selectedIndex++
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.filterInput, cmd = p.filterInput.Update(msg)
	p.filterNames()

	return p, cmd
}

// Highlighted returns the name under the cursor
func (p *Picker) Highlighted() (string, bool) {
	if p.selectedIndex < 0 || p.selectedIndex >= len(p.names) {
		return "", false
	}
	return p.names[p.selectedIndex], true
}

// Names returns the names currently listed, after filtering
func (p *Picker) Names() []string {
	return append([]string(nil), p.names...)
}

// View renders the list next to the preview of the highlighted theme
func (p *Picker) View() string {
	header := theme.HelpKeyStyle.Render(p.title)

	var items []string
	start, end := p.visibleRange()
	for i := start; i < end; i++ {
		prefix := "  "
		if i == p.selectedIndex {
			prefix = "> "
		}
		line := prefix + p.names[i]
		if i == p.selectedIndex {
			line = theme.HelpKeyStyle.Render(line)
		} else {
			line = theme.HelpLabelStyle.Render(line)
		}
		items = append(items, line)
	}
	if len(items) == 0 {
		items = append(items, theme.VersionStyle.Render("  No matching themes"))
	}
	for len(items) < maxVisibleThemes {
		items = append(items, "")
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		p.filterInput.View(),
		"",
		strings.Join(items, "\n"),
	)

	var preview string
	if name, ok := p.Highlighted(); ok {
		config, resolved := p.source.Resolve(name)
		preview = theme.RenderPreview(config.Name, resolved)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(36).Render(left),
		preview,
	)

	return body + "\n" + theme.HelpStyle.Render(p.renderHelp())
}

func (p *Picker) cancel() (tea.Model, tea.Cmd) {
	p.Completed = true
	p.Result.Cancelled = true
	return p, tea.Quit
}

func (p *Picker) renderHelp() string {
	var parts []string
	for _, b := range p.keys.ShortHelp() {
		parts = append(parts, theme.HelpKeyStyle.Render(b.Help().Key)+" "+theme.HelpLabelStyle.Render(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}

// filterNames filters the names with a fuzzy match on the current input,
// best match first
func (p *Picker) filterNames() {
	query := strings.ToLower(p.filterInput.Value())
	if query == p.lastQuery {
		return
	}
	p.lastQuery = query

	if query == "" {
		p.names = p.allNames
		p.selectedIndex = 0
		return
	}

	matches := fuzzy.Find(query, p.allNames)
	filtered := make([]string, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, m.Str)
	}
	p.names = filtered
	p.selectedIndex = 0
}

// visibleRange returns the start and end indices for visible names
func (p *Picker) visibleRange() (int, int) {
	total := len(p.names)
	if total <= maxVisibleThemes {
		return 0, total
	}

	start := p.selectedIndex - maxVisibleThemes/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisibleThemes
	if end > total {
		end = total
		start = end - maxVisibleThemes
	}
	return start, end
}
