package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CHINOOK_HOME
type TestEnvironment struct {
	ChinookHome string
	extraEnv    map[string]string
	tb          testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CHINOOK_HOME.
// The temp directory is removed when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		ChinookHome: tb.TempDir(),
		extraEnv:    make(map[string]string),
		tb:          tb,
	}
}

// Environ returns the process environment without CHINOOK_* variables,
// plus CHINOOK_HOME pointing at the temp directory and debug logging off
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, "CHINOOK_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"CHINOOK_HOME="+e.ChinookHome,
		"CHINOOK_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// WriteFile writes content to name inside the test environment and returns its path
func (e *TestEnvironment) WriteFile(name, content string) string {
	e.tb.Helper()

	path := filepath.Join(e.ChinookHome, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// SettingsPath returns the path of settings.json in the test environment
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.ChinookHome, "settings.json")
}

// SetEnv sets an additional environment variable for this test environment
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
