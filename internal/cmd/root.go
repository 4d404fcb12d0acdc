package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/chinook/internal/config"
	"github.com/renato0307/chinook/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Themes   ThemesCmd   `cmd:"themes" help:"Browse, preview and manage themes (list, show, add, del)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, theme)"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the theme picker over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		File:        c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Exported so child processes log to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Container is created after logging so the gorm logger has a target
	container, err := NewContainer(context.Background())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
