package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTheme is returned when a theme definition is incomplete
var ErrInvalidTheme = errors.New("invalid theme")

// Color is an opaque color token (hex, named color, ANSI code...).
// It is passed through unchanged and never parsed.
type Color string

// Mode represents the base brightness of a theme
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// TextColors holds the text color pair
type TextColors struct {
	Primary   Color `json:"primary" yaml:"primary"`
	Secondary Color `json:"secondary" yaml:"secondary"`
}

// ThemeColors is the declarative palette of a theme.
// Error, Warning, Info and Success are optional: nil means no override.
type ThemeColors struct {
	Background Color      `json:"background" yaml:"background"`
	Primary    Color      `json:"primary" yaml:"primary"`
	Secondary  Color      `json:"secondary" yaml:"secondary"`
	Surface    Color      `json:"surface" yaml:"surface"`
	Text       TextColors `json:"text" yaml:"text"`

	Error   *Color `json:"error,omitempty" yaml:"error,omitempty"`
	Info    *Color `json:"info,omitempty" yaml:"info,omitempty"`
	Success *Color `json:"success,omitempty" yaml:"success,omitempty"`
	Warning *Color `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// ThemeConfig is a named color/mode preset
type ThemeConfig struct {
	Colors ThemeColors `json:"colors" yaml:"colors"`
	Mode   Mode        `json:"mode" yaml:"mode"`
	Name   string      `json:"name" yaml:"name"`
}

// ColorPtr returns a pointer to c, for filling optional slots
func ColorPtr(c Color) *Color {
	return &c
}

// Validate checks that the config carries every required field.
// Resolution does not depend on it; it guards the places where themes
// enter the system (files, forms, storage).
func (c ThemeConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTheme)
	}
	if c.Mode != ModeLight && c.Mode != ModeDark {
		return fmt.Errorf("%w: mode must be %q or %q, got %q", ErrInvalidTheme, ModeLight, ModeDark, c.Mode)
	}

	required := []struct {
		field string
		value Color
	}{
		{"colors.primary", c.Colors.Primary},
		{"colors.secondary", c.Colors.Secondary},
		{"colors.background", c.Colors.Background},
		{"colors.surface", c.Colors.Surface},
		{"colors.text.primary", c.Colors.Text.Primary},
		{"colors.text.secondary", c.Colors.Text.Secondary},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidTheme, r.field)
		}
	}

	return nil
}

// PaletteColor is a resolved color slot
type PaletteColor struct {
	Main Color `json:"main"`
}

// SurfaceColors holds the resolved surface pair: the page surface and the
// elevated (paper) surface
type SurfaceColors struct {
	Default Color `json:"default"`
	Paper   Color `json:"paper"`
}

// ResolvedTheme is the materialized theme handed to a rendering layer.
// Optional slots are nil when the source config did not set them.
type ResolvedTheme struct {
	Mode      Mode          `json:"mode"`
	Primary   PaletteColor  `json:"primary"`
	Secondary PaletteColor  `json:"secondary"`
	Surface   SurfaceColors `json:"surface"`
	Text      TextColors    `json:"text"`

	Error   *PaletteColor `json:"error,omitempty"`
	Info    *PaletteColor `json:"info,omitempty"`
	Success *PaletteColor `json:"success,omitempty"`
	Warning *PaletteColor `json:"warning,omitempty"`
}

// Keys returns the sorted top-level keys present in the resolved theme
func (r ResolvedTheme) Keys() []string {
	keys := []string{"mode", "primary", "secondary", "surface", "text"}

	optional := map[string]*PaletteColor{
		"error":   r.Error,
		"info":    r.Info,
		"success": r.Success,
		"warning": r.Warning,
	}
	for key, slot := range optional {
		if slot != nil {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)
	return keys
}
