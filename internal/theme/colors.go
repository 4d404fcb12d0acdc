package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/chinook/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Fixed UI colors, independent of the selected theme
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// ColorOf converts a theme color token to a lipgloss color.
// lipgloss accepts hex and ANSI codes, which covers the tokens we ship.
func ColorOf(c domain.Color) Color {
	return lipgloss.Color(string(c))
}
