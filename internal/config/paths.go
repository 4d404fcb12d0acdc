package config

import (
	"os"
	"path/filepath"
)

// GetChinookHome returns CHINOOK_HOME or the ~/.chinook default
func GetChinookHome() string {
	home := os.Getenv("CHINOOK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".chinook"
		}
		return filepath.Join(homeDir, ".chinook")
	}
	return ExpandPath(home)
}

// GetDBPath returns $CHINOOK_HOME/themes.db
func GetDBPath() string {
	return filepath.Join(GetChinookHome(), "themes.db")
}

// GetSettingsPath returns $CHINOOK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetChinookHome(), "settings.json")
}

// GetSSHDir returns $CHINOOK_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetChinookHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
