package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/ui"
)

// ThemesPickCmd picks the selected theme interactively
type ThemesPickCmd struct{}

// Run executes the pick command
func (s *ThemesPickCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing themes pick command")

	current := cli.Container.SettingsService.SelectedThemeName()
	picker := ui.NewPicker(cli.Container.ThemeService, current, "Pick a theme")

	final, err := tea.NewProgram(picker, tea.WithAltScreen()).Run()
	if err != nil {
		logging.Logger.Error("Picker program error", "error", err)
		return fmt.Errorf("error running picker: %w", err)
	}

	result := final.(*ui.Picker).Result
	if result.Cancelled || result.Name == "" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := cli.Container.SettingsService.SetTheme(result.Name); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	fmt.Printf("Selected theme: %s\n", result.Name)
	return nil
}
