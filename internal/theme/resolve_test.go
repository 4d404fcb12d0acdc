package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chinook/internal/domain"
)

func TestResolve_DefaultScenario(t *testing.T) {
	r := NewBuiltinRegistry()

	resolved := Resolve(r.Lookup("default"))

	assert.Equal(t, domain.ModeLight, resolved.Mode)
	assert.Equal(t, domain.Color("#1976d2"), resolved.Primary.Main)
	assert.Equal(t, domain.Color("#dc004e"), resolved.Secondary.Main)
	assert.Equal(t, domain.Color("#ffffff"), resolved.Surface.Default)
	assert.Equal(t, domain.Color("#f5f5f5"), resolved.Surface.Paper)
	assert.Equal(t, domain.Color("#000000"), resolved.Text.Primary)
	assert.Equal(t, domain.Color("#666666"), resolved.Text.Secondary)
	require.NotNil(t, resolved.Error)
	assert.Equal(t, domain.Color("#d32f2f"), resolved.Error.Main)
}

func TestResolve_UnknownNameMatchesDefault(t *testing.T) {
	r := NewBuiltinRegistry()

	assert.Equal(t, r.Lookup("default"), r.Lookup("nonexistent"))
	assert.Equal(t, Resolve(r.Lookup("default")), Resolve(r.Lookup("nonexistent")))
}

func TestResolve_Deterministic(t *testing.T) {
	for _, config := range Builtins() {
		t.Run(config.Name, func(t *testing.T) {
			assert.Equal(t, Resolve(config), Resolve(config))
		})
	}
}

func TestResolve_SurfaceRenaming(t *testing.T) {
	config := DarkTheme()

	resolved := Resolve(config)

	assert.Equal(t, config.Colors.Background, resolved.Surface.Default)
	assert.Equal(t, config.Colors.Surface, resolved.Surface.Paper)
}

func TestResolve_OptionalSlots(t *testing.T) {
	tests := []struct {
		name  string
		set   func(c *domain.ThemeColors, v *domain.Color)
		get   func(r domain.ResolvedTheme) *domain.PaletteColor
		color domain.Color
	}{
		{"error", func(c *domain.ThemeColors, v *domain.Color) { c.Error = v }, func(r domain.ResolvedTheme) *domain.PaletteColor { return r.Error }, "#d32f2f"},
		{"warning", func(c *domain.ThemeColors, v *domain.Color) { c.Warning = v }, func(r domain.ResolvedTheme) *domain.PaletteColor { return r.Warning }, "#ed6c02"},
		{"info", func(c *domain.ThemeColors, v *domain.Color) { c.Info = v }, func(r domain.ResolvedTheme) *domain.PaletteColor { return r.Info }, "#0288d1"},
		{"success", func(c *domain.ThemeColors, v *domain.Color) { c.Success = v }, func(r domain.ResolvedTheme) *domain.PaletteColor { return r.Success }, "#2e7d32"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" absent", func(t *testing.T) {
			config := requiredOnly()

			resolved := Resolve(config)

			assert.Nil(t, tt.get(resolved))
			assert.NotContains(t, resolved.Keys(), tt.name)
		})

		t.Run(tt.name+" present", func(t *testing.T) {
			config := requiredOnly()
			tt.set(&config.Colors, domain.ColorPtr(tt.color))

			resolved := Resolve(config)

			require.NotNil(t, tt.get(resolved))
			assert.Equal(t, tt.color, tt.get(resolved).Main)
			assert.Contains(t, resolved.Keys(), tt.name)
		})

		t.Run(tt.name+" empty token", func(t *testing.T) {
			config := requiredOnly()
			tt.set(&config.Colors, domain.ColorPtr(""))

			assert.Nil(t, tt.get(Resolve(config)))
		})
	}
}

func TestResolve_OnlyErrorScenario(t *testing.T) {
	config := requiredOnly()
	config.Colors.Error = domain.ColorPtr("#d32f2f")

	resolved := Resolve(config)

	assert.Equal(t,
		[]string{"error", "mode", "primary", "secondary", "surface", "text"},
		resolved.Keys())

	data, err := json.Marshal(resolved)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	keys := make([]string, 0, len(decoded))
	for k := range decoded {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"mode", "primary", "secondary", "surface", "text", "error"}, keys)

	var surface map[string]string
	require.NoError(t, json.Unmarshal(decoded["surface"], &surface))
	assert.Equal(t, map[string]string{"default": "#ffffff", "paper": "#f5f5f5"}, surface)

	var text map[string]string
	require.NoError(t, json.Unmarshal(decoded["text"], &text))
	assert.Equal(t, map[string]string{"primary": "#000000", "secondary": "#666666"}, text)
}

func TestResolve_DoesNotAliasInput(t *testing.T) {
	config := DefaultTheme()

	resolved := Resolve(config)
	*config.Colors.Error = "#000000"

	assert.Equal(t, domain.Color("#d32f2f"), resolved.Error.Main)
}

func TestResolve_PassesColorTokensThrough(t *testing.T) {
	config := requiredOnly()
	config.Colors.Primary = "rebeccapurple"
	config.Colors.Secondary = "205"

	resolved := Resolve(config)

	assert.Equal(t, domain.Color("rebeccapurple"), resolved.Primary.Main)
	assert.Equal(t, domain.Color("205"), resolved.Secondary.Main)
}

// requiredOnly returns the default palette without optional colors
func requiredOnly() domain.ThemeConfig {
	config := DefaultTheme()
	config.Name = "plain"
	config.Colors.Error = nil
	config.Colors.Warning = nil
	config.Colors.Info = nil
	config.Colors.Success = nil
	return config
}
