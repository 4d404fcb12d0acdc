package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() ThemeConfig {
	return ThemeConfig{
		Name: "sample",
		Mode: ModeLight,
		Colors: ThemeColors{
			Primary:    "#1976d2",
			Secondary:  "#dc004e",
			Background: "#ffffff",
			Surface:    "#f5f5f5",
			Text:       TextColors{Primary: "#000000", Secondary: "#666666"},
		},
	}
}

func TestThemeConfigValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestThemeConfigValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ThemeConfig)
	}{
		{"empty name", func(c *ThemeConfig) { c.Name = "" }},
		{"unknown mode", func(c *ThemeConfig) { c.Mode = "sepia" }},
		{"empty mode", func(c *ThemeConfig) { c.Mode = "" }},
		{"primary", func(c *ThemeConfig) { c.Colors.Primary = "" }},
		{"secondary", func(c *ThemeConfig) { c.Colors.Secondary = "" }},
		{"background", func(c *ThemeConfig) { c.Colors.Background = "" }},
		{"surface", func(c *ThemeConfig) { c.Colors.Surface = "" }},
		{"text primary", func(c *ThemeConfig) { c.Colors.Text.Primary = "" }},
		{"text secondary", func(c *ThemeConfig) { c.Colors.Text.Secondary = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidTheme)
		})
	}
}

func TestThemeConfigValidate_OptionalColorsNotRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Colors.Error = ColorPtr("#d32f2f")

	assert.NoError(t, cfg.Validate())
}

func TestResolvedThemeKeys(t *testing.T) {
	r := ResolvedTheme{Error: &PaletteColor{Main: "#d32f2f"}}
	assert.Equal(t, []string{"error", "mode", "primary", "secondary", "surface", "text"}, r.Keys())

	r.Warning = &PaletteColor{Main: "#ed6c02"}
	r.Info = &PaletteColor{Main: "#0288d1"}
	r.Success = &PaletteColor{Main: "#2e7d32"}
	assert.Len(t, r.Keys(), 9)
}

func TestResolvedThemeJSON_OmitsAbsentSlots(t *testing.T) {
	r := ResolvedTheme{
		Mode:    ModeDark,
		Primary: PaletteColor{Main: "#90caf9"},
		Error:   &PaletteColor{Main: "#ef5350"},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "error")
	assert.NotContains(t, decoded, "warning")
	assert.NotContains(t, decoded, "info")
	assert.NotContains(t, decoded, "success")
}

func TestThemeConfigJSON_OptionalColors(t *testing.T) {
	data := []byte(`{
		"name": "partial",
		"mode": "dark",
		"colors": {
			"primary": "#90caf9",
			"secondary": "#f48fb1",
			"background": "#121212",
			"surface": "#1e1e1e",
			"text": {"primary": "#ffffff", "secondary": "#b0b0b0"},
			"warning": "#ffa726"
		}
	}`)

	var cfg ThemeConfig
	require.NoError(t, json.Unmarshal(data, &cfg))

	assert.Nil(t, cfg.Colors.Error)
	require.NotNil(t, cfg.Colors.Warning)
	assert.Equal(t, Color("#ffa726"), *cfg.Colors.Warning)
	assert.NoError(t, cfg.Validate())
}
