package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/chinook/internal/config"
	"github.com/renato0307/chinook/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta  SettingsMetaCmd  `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	Theme SettingsThemeCmd `cmd:"theme" help:"Show or set the selected theme"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsThemeCmd shows or sets the selected theme
type SettingsThemeCmd struct {
	Name string `arg:"" optional:"" help:"Theme to select (omit to show the current selection)"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return writeJSON(os.Stdout, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure chinook.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// Run executes the theme command
func (s *SettingsThemeCmd) Run(cli *CLI) error {
	settingsService := cli.Container.SettingsService

	if s.Name == "" {
		selected := settingsService.SelectedThemeName()
		current := settingsService.CurrentTheme()
		if current.Name != selected {
			fmt.Printf("%s (not found, using %s)\n", selected, current.Name)
			return nil
		}
		fmt.Println(current.Name)
		return nil
	}

	logging.Logger.Info("Executing settings theme command", "name", s.Name)

	if err := settingsService.SetTheme(s.Name); err != nil {
		return withSuggestions(err, cli.Container.ThemeService.Suggest(s.Name))
	}

	fmt.Printf("Selected theme: %s\n", s.Name)
	return nil
}
