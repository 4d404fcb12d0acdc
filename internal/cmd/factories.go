package cmd

import (
	"context"
	"fmt"

	adapterstorage "github.com/renato0307/chinook/internal/adapters/storage"
	"github.com/renato0307/chinook/internal/config"
	"github.com/renato0307/chinook/internal/ports"
	"github.com/renato0307/chinook/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	SettingsService *services.SettingsService
	ThemeService    *services.ThemeService

	// Internal - for cleanup only
	themeRepo ports.ThemeRepository
}

// NewContainer creates a new Container backed by $CHINOOK_HOME/themes.db
func NewContainer(ctx context.Context) (*Container, error) {
	themeRepo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	return newContainerWithRepository(ctx, themeRepo)
}

func newContainerWithRepository(ctx context.Context, themeRepo ports.ThemeRepository) (*Container, error) {
	themeService, err := services.NewThemeService(ctx, themeRepo)
	if err != nil {
		_ = themeRepo.Close()
		return nil, fmt.Errorf("failed to create theme service: %w", err)
	}

	return &Container{
		SettingsService: services.NewSettingsService(themeService),
		ThemeService:    themeService,
		themeRepo:       themeRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.themeRepo != nil {
		return c.themeRepo.Close()
	}
	return nil
}
