package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults for the SSH preview server
const (
	DefaultSSHHost = "localhost"
	DefaultSSHPort = 23234
)

// Settings represents the structure of $CHINOOK_HOME/settings.json
type Settings struct {
	Debug       *bool  `json:"debug,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	SSHHost     string `json:"ssh_host,omitempty"`
	SSHPort     *int   `json:"ssh_port,omitempty"`
	Theme       string `json:"theme,omitempty"`
}

// LoadSettings loads settings from $CHINOOK_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CHINOOK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to path, creating the directory if needed
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// SSHAddress returns the configured SSH host and port with defaults applied
func (s *Settings) SSHAddress() (string, int) {
	host := DefaultSSHHost
	port := DefaultSSHPort
	if s == nil {
		return host, port
	}
	if s.SSHHost != "" {
		host = s.SSHHost
	}
	if s.SSHPort != nil {
		port = *s.SSHPort
	}
	return host, port
}
