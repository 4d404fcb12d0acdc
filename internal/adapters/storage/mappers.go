package storage

import (
	"github.com/renato0307/chinook/internal/domain"
)

// themeModelToDomain converts a ThemeModel (GORM) to domain.ThemeConfig
func themeModelToDomain(m ThemeModel) domain.ThemeConfig {
	return domain.ThemeConfig{
		Name: m.Name,
		Mode: domain.Mode(m.Mode),
		Colors: domain.ThemeColors{
			Background: domain.Color(m.Background),
			Primary:    domain.Color(m.Primary),
			Secondary:  domain.Color(m.Secondary),
			Surface:    domain.Color(m.Surface),
			Text: domain.TextColors{
				Primary:   domain.Color(m.TextPrimary),
				Secondary: domain.Color(m.TextSecondary),
			},
			Error:   stringToColor(m.Error),
			Info:    stringToColor(m.Info),
			Success: stringToColor(m.Success),
			Warning: stringToColor(m.Warning),
		},
	}
}

// domainToThemeModel converts a domain.ThemeConfig to ThemeModel (GORM)
func domainToThemeModel(t domain.ThemeConfig) ThemeModel {
	return ThemeModel{
		Background:    string(t.Colors.Background),
		Error:         colorToString(t.Colors.Error),
		Info:          colorToString(t.Colors.Info),
		Mode:          string(t.Mode),
		Name:          t.Name,
		Primary:       string(t.Colors.Primary),
		Secondary:     string(t.Colors.Secondary),
		Success:       colorToString(t.Colors.Success),
		Surface:       string(t.Colors.Surface),
		TextPrimary:   string(t.Colors.Text.Primary),
		TextSecondary: string(t.Colors.Text.Secondary),
		Warning:       colorToString(t.Colors.Warning),
	}
}

func colorToString(c *domain.Color) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

func stringToColor(s *string) *domain.Color {
	if s == nil {
		return nil
	}
	c := domain.Color(*s)
	return &c
}
