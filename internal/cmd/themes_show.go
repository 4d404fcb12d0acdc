package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/services"
	"github.com/renato0307/chinook/internal/theme"
)

// ThemesShowCmd shows the resolved palette of a theme
type ThemesShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" optional:"" help:"Theme name (defaults to the selected theme)"`
	Strict bool   `help:"Fail on unknown names instead of falling back to the default theme"`
}

// ThemesPreviewCmd renders color swatches for a theme
type ThemesPreviewCmd struct {
	Name string `arg:"" optional:"" help:"Theme name (defaults to the selected theme)"`
}

// resolvedOutput is the JSON shape of themes show
type resolvedOutput struct {
	Name  string               `json:"name"`
	Theme domain.ResolvedTheme `json:"theme"`
}

// Run executes the show command
func (s *ThemesShowCmd) Run(cli *CLI) error {
	name := s.Name
	if name == "" {
		name = cli.Container.SettingsService.SelectedThemeName()
	}
	logging.Logger.Info("Executing themes show command", "name", name, "strict", s.Strict)

	config, resolved, err := resolveTheme(cli.Container.ThemeService, name, s.Strict)
	if err != nil {
		return err
	}
	writeFallbackNotice(os.Stderr, name, config.Name)

	if s.Format == "json" {
		return writeJSON(os.Stdout, resolvedOutput{Name: config.Name, Theme: resolved})
	}
	return writeResolvedTable(os.Stdout, config.Name, resolved)
}

// Run executes the preview command
func (s *ThemesPreviewCmd) Run(cli *CLI) error {
	name := s.Name
	if name == "" {
		name = cli.Container.SettingsService.SelectedThemeName()
	}
	logging.Logger.Info("Executing themes preview command", "name", name)

	config, resolved := cli.Container.ThemeService.Resolve(name)
	writeFallbackNotice(os.Stderr, name, config.Name)

	fmt.Println(theme.RenderPreview(config.Name, resolved))
	return nil
}

// writeFallbackNotice tells the user when a soft lookup fell back to
// another theme
func writeFallbackNotice(out io.Writer, requested, shown string) {
	if requested == shown {
		return
	}
	fmt.Fprintf(out, "Theme '%s' not found, showing '%s'\n", requested, shown)
}

// resolveTheme resolves name with the soft or strict lookup
func resolveTheme(themes *services.ThemeService, name string, strict bool) (domain.ThemeConfig, domain.ResolvedTheme, error) {
	if !strict {
		config, resolved := themes.Resolve(name)
		return config, resolved, nil
	}

	config, err := themes.LookupStrict(name)
	if err != nil {
		return domain.ThemeConfig{}, domain.ResolvedTheme{}, withSuggestions(err, themes.Suggest(name))
	}
	return config, theme.Resolve(config), nil
}

// withSuggestions appends "did you mean" hints to an unknown theme error
func withSuggestions(err error, suggestions []string) error {
	if len(suggestions) == 0 || !errors.Is(err, theme.ErrUnknownTheme) {
		return err
	}
	return fmt.Errorf("%w (did you mean: %s?)", err, strings.Join(suggestions, ", "))
}

func writeResolvedTable(out io.Writer, name string, resolved domain.ResolvedTheme) error {
	fmt.Fprintf(out, "Theme: %s (%s)\n\n", name, resolved.Mode)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Slot\tColor")
	fmt.Fprintln(w, "────\t─────")
	for _, slot := range theme.Slots(resolved) {
		if !slot.Set {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", slot.Key, slot.Color)
	}

	return w.Flush()
}
