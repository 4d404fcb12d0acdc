package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/theme"
)

// ThemesAddCmd imports a theme file
type ThemesAddCmd struct {
	File string `arg:"" help:"Path to a .json, .yaml or .yml theme file" type:"existingfile"`
}

// ThemesNewCmd creates a theme with an interactive form
type ThemesNewCmd struct{}

// themeForm holds the raw values of the theme form
type themeForm struct {
	Background    string
	Error         string
	Info          string
	Mode          string
	Name          string
	Primary       string
	Secondary     string
	Success       string
	Surface       string
	TextPrimary   string
	TextSecondary string
	Warning       string
}

// Run executes the add command
func (s *ThemesAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing themes add command", "file", s.File)

	config, err := cli.Container.ThemeService.Import(context.Background(), s.File)
	if err != nil {
		return fmt.Errorf("failed to add theme: %w", err)
	}

	fmt.Printf("Theme '%s' added successfully\n", config.Name)
	return nil
}

// Run executes the new command
func (s *ThemesNewCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing themes new command")

	values := themeForm{Mode: string(domain.ModeLight)}
	if err := newThemeForm(&values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Cancelled")
			return nil
		}
		return fmt.Errorf("failed to run theme form: %w", err)
	}

	config := formToConfig(values)
	if err := cli.Container.ThemeService.Add(context.Background(), config); err != nil {
		return fmt.Errorf("failed to add theme: %w", err)
	}

	fmt.Printf("Theme '%s' added successfully\n", config.Name)
	return nil
}

func newThemeForm(values *themeForm) *huh.Form {
	required := func(label string) func(string) error {
		return func(s string) error {
			if s == "" {
				return fmt.Errorf("%s is required", label)
			}
			return nil
		}
	}

	colorInput := func(title string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title).
			Placeholder("#rrggbb").
			Value(value).
			Validate(required(title))
	}

	optionalInput := func(title string, value *string) *huh.Input {
		return huh.NewInput().
			Title(title + " (optional)").
			Placeholder("leave empty for no override").
			Value(value)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Theme name").
				Value(&values.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("theme name is required")
					}
					if theme.IsBuiltin(s) {
						return fmt.Errorf("'%s' is a built-in theme", s)
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Mode").
				Options(
					huh.NewOption("Light", string(domain.ModeLight)),
					huh.NewOption("Dark", string(domain.ModeDark)),
				).
				Value(&values.Mode),
		),
		huh.NewGroup(
			colorInput("Primary", &values.Primary),
			colorInput("Secondary", &values.Secondary),
			colorInput("Background", &values.Background),
			colorInput("Surface", &values.Surface),
			colorInput("Text primary", &values.TextPrimary),
			colorInput("Text secondary", &values.TextSecondary),
		),
		huh.NewGroup(
			optionalInput("Error", &values.Error),
			optionalInput("Warning", &values.Warning),
			optionalInput("Info", &values.Info),
			optionalInput("Success", &values.Success),
		),
	)
}

// formToConfig converts form values to a theme. Empty optional fields
// become absent slots.
func formToConfig(values themeForm) domain.ThemeConfig {
	optional := func(s string) *domain.Color {
		if s == "" {
			return nil
		}
		return domain.ColorPtr(domain.Color(s))
	}

	return domain.ThemeConfig{
		Name: values.Name,
		Mode: domain.Mode(values.Mode),
		Colors: domain.ThemeColors{
			Primary:    domain.Color(values.Primary),
			Secondary:  domain.Color(values.Secondary),
			Background: domain.Color(values.Background),
			Surface:    domain.Color(values.Surface),
			Text: domain.TextColors{
				Primary:   domain.Color(values.TextPrimary),
				Secondary: domain.Color(values.TextSecondary),
			},
			Error:   optional(values.Error),
			Warning: optional(values.Warning),
			Info:    optional(values.Info),
			Success: optional(values.Success),
		},
	}
}
