package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/chinook/internal/domain"
)

// Styles holds the terminal styles derived from a resolved theme
type Styles struct {
	Mode domain.Mode

	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Paper    lipgloss.Style
	Subtitle lipgloss.Style
	Surface  lipgloss.Style
	Title    lipgloss.Style

	Error   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
}

// Static styles used by the CLI and picker chrome
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// NewStyles builds terminal styles from a resolved theme.
// Status slots that the theme leaves unset are drawn with the primary
// color; the resolved theme itself is not touched.
func NewStyles(r domain.ResolvedTheme) Styles {
	primary := ColorOf(r.Primary.Main)
	surface := ColorOf(r.Surface.Default)
	paper := ColorOf(r.Surface.Paper)

	statusStyle := func(slot *domain.PaletteColor) lipgloss.Style {
		color := primary
		if slot != nil {
			color = ColorOf(slot.Main)
		}
		return lipgloss.NewStyle().
			Foreground(color).
			Bold(true)
	}

	return Styles{
		Mode: r.Mode,

		Muted: lipgloss.NewStyle().
			Foreground(ColorOf(r.Text.Secondary)),
		Normal: lipgloss.NewStyle().
			Foreground(ColorOf(r.Text.Primary)),
		Paper: lipgloss.NewStyle().
			Foreground(ColorOf(r.Text.Primary)).
			Background(paper).
			Padding(0, 1),
		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOf(r.Secondary.Main)),
		Surface: lipgloss.NewStyle().
			Background(surface).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(1, 0),

		Error:   statusStyle(r.Error),
		Info:    statusStyle(r.Info),
		Success: statusStyle(r.Success),
		Warning: statusStyle(r.Warning),
	}
}

// SwatchStyle returns a block style painted with color
func SwatchStyle(color domain.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(ColorOf(color)).
		Width(4)
}
