package ports

import (
	"context"
	"errors"

	"github.com/renato0307/chinook/internal/domain"
)

// ErrThemeNotFound is returned when a stored theme does not exist
var ErrThemeNotFound = errors.New("theme not found")

// ThemeReader reads stored themes
type ThemeReader interface {
	Get(ctx context.Context, name string) (*domain.ThemeConfig, error)
	List(ctx context.Context) ([]domain.ThemeConfig, error)
}

// ThemeWriter creates, replaces and deletes stored themes
type ThemeWriter interface {
	Delete(ctx context.Context, name string) error
	Save(ctx context.Context, theme domain.ThemeConfig) error
}

// ThemeRepository is the composite interface
type ThemeRepository interface {
	ThemeReader
	ThemeWriter
	Close() error
}
