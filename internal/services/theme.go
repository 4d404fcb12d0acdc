package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/ports"
	"github.com/renato0307/chinook/internal/theme"
)

var (
	// ErrReservedThemeName is returned when a custom theme uses a built-in name
	ErrReservedThemeName = errors.New("theme name is reserved for a built-in theme")
	// ErrUnsupportedThemeFile is returned when importing a file with an unknown extension
	ErrUnsupportedThemeFile = errors.New("unsupported theme file (use .json, .yaml or .yml)")
)

const maxSuggestions = 3

// ThemeService owns the theme registry and the stored custom themes
type ThemeService struct {
	registry *theme.Registry
	repo     ports.ThemeRepository
}

// NewThemeService builds the registry once: built-in presets first, then
// the custom themes found in repo. Stored themes that fail validation are
// skipped. When the store cannot be read at all the service starts with
// the built-ins only.
func NewThemeService(ctx context.Context, repo ports.ThemeRepository) (*ThemeService, error) {
	registry := theme.NewBuiltinRegistry()

	stored, err := repo.List(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load custom themes, using built-ins only", "error", err)
		stored = nil
	}

	for _, config := range stored {
		if err := config.Validate(); err != nil {
			logging.Logger.Warn("Skipping invalid stored theme", "name", config.Name, "error", err)
			continue
		}
		if theme.IsBuiltin(config.Name) {
			logging.Logger.Warn("Skipping stored theme shadowing a built-in", "name", config.Name)
			continue
		}
		if err := registry.Register(config); err != nil {
			logging.Logger.Warn("Skipping stored theme", "name", config.Name, "error", err)
			continue
		}
	}

	logging.Logger.Debug("Theme registry ready",
		"themes", len(registry.Names()),
		"custom", len(stored))

	return &ThemeService{
		registry: registry,
		repo:     repo,
	}, nil
}

// Names returns all theme names, built-ins first
func (s *ThemeService) Names() []string {
	return s.registry.Names()
}

// DefaultName returns the fallback theme name
func (s *ThemeService) DefaultName() string {
	return s.registry.DefaultName()
}

// Lookup returns the named theme, falling back to the default one
func (s *ThemeService) Lookup(name string) domain.ThemeConfig {
	config := s.registry.Lookup(name)
	if config.Name != name {
		logging.Logger.Debug("Theme not found, using fallback", "requested", name, "fallback", config.Name)
	}
	return config
}

// LookupStrict returns the named theme or theme.ErrUnknownTheme
func (s *ThemeService) LookupStrict(name string) (domain.ThemeConfig, error) {
	return s.registry.LookupStrict(name)
}

// Resolve looks name up (with fallback) and resolves it
func (s *ThemeService) Resolve(name string) (domain.ThemeConfig, domain.ResolvedTheme) {
	config := s.Lookup(name)
	return config, theme.Resolve(config)
}

// Suggest returns registered names close to name, best match first
func (s *ThemeService) Suggest(name string) []string {
	if name == "" {
		return nil
	}

	matches := fuzzy.Find(strings.ToLower(name), s.registry.Names())
	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}

// Add validates, persists and registers a custom theme.
// Saving an existing custom name replaces it.
func (s *ThemeService) Add(ctx context.Context, config domain.ThemeConfig) error {
	logging.Logger.Info("Adding custom theme", "name", config.Name)

	if err := config.Validate(); err != nil {
		return err
	}
	if theme.IsBuiltin(config.Name) {
		return fmt.Errorf("%w: %s", ErrReservedThemeName, config.Name)
	}

	if err := s.repo.Save(ctx, config); err != nil {
		logging.Logger.Error("Failed to save theme", "name", config.Name, "error", err)
		return fmt.Errorf("failed to save theme: %w", err)
	}

	if err := s.registry.Register(config); err != nil {
		return fmt.Errorf("failed to register theme: %w", err)
	}

	logging.Logger.Info("Custom theme added", "name", config.Name)
	return nil
}

// Import reads a theme file and adds it
func (s *ThemeService) Import(ctx context.Context, path string) (domain.ThemeConfig, error) {
	logging.Logger.Info("Importing theme file", "path", path)

	config, err := ReadThemeFile(path)
	if err != nil {
		return domain.ThemeConfig{}, err
	}

	if err := s.Add(ctx, config); err != nil {
		return domain.ThemeConfig{}, err
	}
	return config, nil
}

// Delete removes a custom theme from storage. The registry of the running
// process keeps its startup snapshot.
func (s *ThemeService) Delete(ctx context.Context, name string) error {
	logging.Logger.Info("Deleting custom theme", "name", name)

	if theme.IsBuiltin(name) {
		return fmt.Errorf("%w: %s", ErrReservedThemeName, name)
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}
	return nil
}

// ReadThemeFile decodes a theme from a JSON or YAML file
func ReadThemeFile(path string) (domain.ThemeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ThemeConfig{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config domain.ThemeConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&config); err != nil {
			return domain.ThemeConfig{}, fmt.Errorf("failed to parse theme file: %w", err)
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&config); err != nil {
			return domain.ThemeConfig{}, fmt.Errorf("failed to parse theme file: %w", err)
		}
	default:
		return domain.ThemeConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedThemeFile, path)
	}

	return config, nil
}
