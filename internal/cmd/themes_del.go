package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/chinook/internal/logging"
)

// ThemesDelCmd deletes a custom theme
type ThemesDelCmd struct {
	Force bool   `help:"Force deletion without confirmation" short:"f"`
	Name  string `arg:"" help:"Name of the custom theme to delete"`
}

// Run executes the del command
func (s *ThemesDelCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing themes del command", "name", s.Name, "force", s.Force)

	if !s.Force {
		confirmed, err := s.confirmDeletion()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.ThemeService.Delete(context.Background(), s.Name); err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}

	if cli.Container.SettingsService.SelectedThemeName() == s.Name {
		fmt.Printf("Note: '%s' was the selected theme; the default theme will be used\n", s.Name)
	}

	fmt.Printf("Theme '%s' deleted successfully\n", s.Name)
	return nil
}

func (s *ThemesDelCmd) confirmDeletion() (bool, error) {
	logging.Logger.Debug("Prompting user for confirmation", "name", s.Name)

	var confirmed bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete theme '%s'?", s.Name)).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return confirmed, nil
}
