package theme

import "github.com/renato0307/chinook/internal/domain"

// Built-in theme names
const (
	DarkThemeName    = "dark"
	DefaultThemeName = "default"
	MusicThemeName   = "music"
)

// DefaultTheme is the light fallback theme
func DefaultTheme() domain.ThemeConfig {
	return domain.ThemeConfig{
		Name: DefaultThemeName,
		Mode: domain.ModeLight,
		Colors: domain.ThemeColors{
			Primary:    "#1976d2",
			Secondary:  "#dc004e",
			Background: "#ffffff",
			Surface:    "#f5f5f5",
			Text: domain.TextColors{
				Primary:   "#000000",
				Secondary: "#666666",
			},
			Error:   domain.ColorPtr("#d32f2f"),
			Warning: domain.ColorPtr("#ed6c02"),
			Info:    domain.ColorPtr("#0288d1"),
			Success: domain.ColorPtr("#2e7d32"),
		},
	}
}

// DarkTheme is the dark counterpart of DefaultTheme
func DarkTheme() domain.ThemeConfig {
	return domain.ThemeConfig{
		Name: DarkThemeName,
		Mode: domain.ModeDark,
		Colors: domain.ThemeColors{
			Primary:    "#90caf9",
			Secondary:  "#f48fb1",
			Background: "#121212",
			Surface:    "#1e1e1e",
			Text: domain.TextColors{
				Primary:   "#ffffff",
				Secondary: "#b0b0b0",
			},
			Error:   domain.ColorPtr("#ef5350"),
			Warning: domain.ColorPtr("#ffa726"),
			Info:    domain.ColorPtr("#42a5f5"),
			Success: domain.ColorPtr("#66bb6a"),
		},
	}
}

// MusicTheme is a purple/orange light theme
func MusicTheme() domain.ThemeConfig {
	return domain.ThemeConfig{
		Name: MusicThemeName,
		Mode: domain.ModeLight,
		Colors: domain.ThemeColors{
			Primary:    "#9c27b0", // Purple
			Secondary:  "#ff9800", // Orange
			Background: "#ffffff",
			Surface:    "#f3e5f5",
			Text: domain.TextColors{
				Primary:   "#1a1a1a",
				Secondary: "#6a6a6a",
			},
			Error:   domain.ColorPtr("#d32f2f"),
			Warning: domain.ColorPtr("#ed6c02"),
			Info:    domain.ColorPtr("#0288d1"),
			Success: domain.ColorPtr("#2e7d32"),
		},
	}
}

// Builtins returns the built-in presets, default first
func Builtins() []domain.ThemeConfig {
	return []domain.ThemeConfig{DefaultTheme(), DarkTheme(), MusicTheme()}
}

// IsBuiltin reports whether name belongs to a built-in preset
func IsBuiltin(name string) bool {
	switch name {
	case DefaultThemeName, DarkThemeName, MusicThemeName:
		return true
	}
	return false
}

// NewBuiltinRegistry returns a registry holding the built-in presets with
// "default" as the fallback
func NewBuiltinRegistry() *Registry {
	builtins := Builtins()
	r := NewRegistry(builtins[0])
	for _, config := range builtins[1:] {
		// Built-in names are never empty
		_ = r.Register(config)
	}
	return r
}
