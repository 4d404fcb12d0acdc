package theme

import "github.com/renato0307/chinook/internal/domain"

// Resolve materializes config into a ResolvedTheme.
//
// Background and surface become the default and paper surfaces. Optional
// status colors are carried over only when set (an empty token counts as
// unset); absent ones stay nil and are never replaced by a placeholder.
func Resolve(config domain.ThemeConfig) domain.ResolvedTheme {
	colors := config.Colors

	resolved := domain.ResolvedTheme{
		Mode:      config.Mode,
		Primary:   domain.PaletteColor{Main: colors.Primary},
		Secondary: domain.PaletteColor{Main: colors.Secondary},
		Surface: domain.SurfaceColors{
			Default: colors.Background,
			Paper:   colors.Surface,
		},
		Text: domain.TextColors{
			Primary:   colors.Text.Primary,
			Secondary: colors.Text.Secondary,
		},
	}

	resolved.Error = optionalSlot(colors.Error)
	resolved.Warning = optionalSlot(colors.Warning)
	resolved.Info = optionalSlot(colors.Info)
	resolved.Success = optionalSlot(colors.Success)

	return resolved
}

func optionalSlot(c *domain.Color) *domain.PaletteColor {
	if c == nil || *c == "" {
		return nil
	}
	return &domain.PaletteColor{Main: *c}
}
