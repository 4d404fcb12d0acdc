package services

import (
	"fmt"

	"github.com/renato0307/chinook/internal/config"
	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/logging"
)

// SettingsService reads and updates the selected theme in settings.json
type SettingsService struct {
	themes *ThemeService
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(themes *ThemeService) *SettingsService {
	return &SettingsService{
		themes: themes,
	}
}

// SelectedThemeName returns the theme name stored in settings, or the
// default theme name when none is set
func (s *SettingsService) SelectedThemeName() string {
	settings, err := config.LoadSettings()
	if err != nil {
		logging.Logger.Warn("Failed to load settings, using default theme", "error", err)
		return s.themes.DefaultName()
	}
	if settings.Theme == "" {
		return s.themes.DefaultName()
	}
	return settings.Theme
}

// CurrentTheme returns the selected theme. A selection that no longer
// exists degrades to the default theme.
func (s *SettingsService) CurrentTheme() domain.ThemeConfig {
	return s.themes.Lookup(s.SelectedThemeName())
}

// SetTheme stores name as the selected theme. Unlike CurrentTheme, an
// unknown name is an error here.
func (s *SettingsService) SetTheme(name string) error {
	logging.Logger.Info("Setting selected theme", "name", name)

	if _, err := s.themes.LookupStrict(name); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.Theme = name
	if err := config.SaveSettings(settings); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Selected theme updated", "name", name)
	return nil
}
