package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/theme"
)

// ThemesCmd manages themes
type ThemesCmd struct {
	Add     ThemesAddCmd     `cmd:"add" help:"Import a theme from a JSON or YAML file"`
	Del     ThemesDelCmd     `cmd:"del" help:"Delete a custom theme"`
	List    ThemesListCmd    `cmd:"list" help:"List all themes" default:"1"`
	New     ThemesNewCmd     `cmd:"new" help:"Create a theme interactively"`
	Pick    ThemesPickCmd    `cmd:"pick" help:"Pick the selected theme from an interactive list"`
	Preview ThemesPreviewCmd `cmd:"preview" help:"Render color swatches for a theme"`
	Show    ThemesShowCmd    `cmd:"show" help:"Show the resolved palette of a theme"`
}

// ThemesListCmd lists all themes
type ThemesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// themeListEntry is one row of the themes list
type themeListEntry struct {
	Builtin  bool   `json:"builtin"`
	Mode     string `json:"mode"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// Run executes the list command
func (s *ThemesListCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing themes list command")

	themes := cli.Container.ThemeService
	selected := cli.Container.SettingsService.SelectedThemeName()

	var entries []themeListEntry
	for _, name := range themes.Names() {
		config := themes.Lookup(name)
		entries = append(entries, themeListEntry{
			Builtin:  theme.IsBuiltin(name),
			Mode:     string(config.Mode),
			Name:     name,
			Selected: name == selected,
		})
	}

	if s.Format == "json" {
		return writeJSON(os.Stdout, entries)
	}
	return writeThemeTable(os.Stdout, entries)
}

func writeThemeTable(out io.Writer, entries []themeListEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "\tName\tMode\tKind")
	fmt.Fprintln(w, "\t────\t────\t────")

	for _, e := range entries {
		marker := ""
		if e.Selected {
			marker = "*"
		}
		kind := "custom"
		if e.Builtin {
			kind = "built-in"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", marker, e.Name, e.Mode, kind)
	}

	return w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
