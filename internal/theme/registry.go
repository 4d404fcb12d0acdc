package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/renato0307/chinook/internal/domain"
)

var (
	// ErrEmptyThemeName is returned when registering a config without a name
	ErrEmptyThemeName = errors.New("theme name is required")
	// ErrUnknownTheme is returned by strict lookups for names that are not registered
	ErrUnknownTheme = errors.New("unknown theme")
)

// Registry maps theme names to configs. It always holds a default entry,
// so Lookup never fails. Writes are expected at startup only; reads may
// come from any goroutine.
type Registry struct {
	defaultName string
	mu          sync.RWMutex
	names       []string
	themes      map[string]domain.ThemeConfig
}

// NewRegistry creates a registry whose default entry is defaultConfig.
// An unnamed default is registered as "default".
func NewRegistry(defaultConfig domain.ThemeConfig) *Registry {
	if defaultConfig.Name == "" {
		defaultConfig.Name = DefaultThemeName
	}
	return &Registry{
		defaultName: defaultConfig.Name,
		names:       []string{defaultConfig.Name},
		themes:      map[string]domain.ThemeConfig{defaultConfig.Name: cloneConfig(defaultConfig)},
	}
}

// Register adds config or replaces the entry with the same name.
// A replaced entry keeps its position in Names.
func (r *Registry) Register(config domain.ThemeConfig) error {
	if config.Name == "" {
		return ErrEmptyThemeName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.themes[config.Name]; !exists {
		r.names = append(r.names, config.Name)
	}
	r.themes[config.Name] = cloneConfig(config)
	return nil
}

// Lookup returns the config registered under name, or the default config
// when name is unknown
func (r *Registry) Lookup(name string) domain.ThemeConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if config, ok := r.themes[name]; ok {
		return cloneConfig(config)
	}
	return cloneConfig(r.themes[r.defaultName])
}

// LookupStrict is Lookup without the fallback, for names typed by an operator
func (r *Registry) LookupStrict(name string) (domain.ThemeConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, ok := r.themes[name]
	if !ok {
		return domain.ThemeConfig{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return cloneConfig(config), nil
}

// Has reports whether name is registered
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.themes[name]
	return ok
}

// Names returns a snapshot of the registered names in insertion order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// DefaultName returns the name of the fallback entry
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// cloneConfig copies the optional color pointers so callers cannot mutate
// registered entries through a returned value
func cloneConfig(in domain.ThemeConfig) domain.ThemeConfig {
	out := in
	out.Colors.Error = cloneColor(in.Colors.Error)
	out.Colors.Info = cloneColor(in.Colors.Info)
	out.Colors.Success = cloneColor(in.Colors.Success)
	out.Colors.Warning = cloneColor(in.Colors.Warning)
	return out
}

func cloneColor(c *domain.Color) *domain.Color {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
