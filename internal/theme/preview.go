package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/chinook/internal/domain"
)

// Slot is one named color of a resolved theme
type Slot struct {
	Color domain.Color
	Key   string
	Set   bool
}

// Slots flattens a resolved theme into its color slots, in display order.
// Optional slots that are absent are reported with Set false.
func Slots(r domain.ResolvedTheme) []Slot {
	slots := []Slot{
		{Key: "primary", Color: r.Primary.Main, Set: true},
		{Key: "secondary", Color: r.Secondary.Main, Set: true},
		{Key: "surface.default", Color: r.Surface.Default, Set: true},
		{Key: "surface.paper", Color: r.Surface.Paper, Set: true},
		{Key: "text.primary", Color: r.Text.Primary, Set: true},
		{Key: "text.secondary", Color: r.Text.Secondary, Set: true},
	}

	optional := []struct {
		key  string
		slot *domain.PaletteColor
	}{
		{"error", r.Error},
		{"warning", r.Warning},
		{"info", r.Info},
		{"success", r.Success},
	}
	for _, o := range optional {
		if o.slot == nil {
			slots = append(slots, Slot{Key: o.key})
			continue
		}
		slots = append(slots, Slot{Key: o.key, Color: o.slot.Main, Set: true})
	}

	return slots
}

// RenderPreview renders a swatch listing for a theme
func RenderPreview(name string, r domain.ResolvedTheme) string {
	styles := NewStyles(r)

	var rows []string
	for _, slot := range Slots(r) {
		label := HelpLabelStyle.Render(fmt.Sprintf("%-16s", slot.Key))
		if !slot.Set {
			rows = append(rows, "    "+" "+label+" "+VersionStyle.Render("not set"))
			continue
		}
		rows = append(rows, SwatchStyle(slot.Color).Render("    ")+" "+label+" "+string(slot.Color))
	}

	header := styles.Title.Render(name) + " " + styles.Muted.Render("("+string(r.Mode)+")")
	sample := styles.Paper.Render(
		styles.Normal.Render("Artists") + "  " +
			styles.Muted.Render("Albums") + "  " +
			styles.Subtitle.Render("Tracks"),
	)

	var status []string
	for _, s := range []struct {
		label string
		style lipgloss.Style
	}{
		{"error", styles.Error},
		{"warning", styles.Warning},
		{"info", styles.Info},
		{"success", styles.Success},
	} {
		status = append(status, s.style.Render(s.label))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Join(rows, "\n"),
		"",
		sample,
		strings.Join(status, " "),
	)
}
