package integration_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chinook/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings", "meta"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "theme")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Contains(t, output, "settings_file")
				assert.Contains(t, output, "format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)
			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSettingsTheme(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	t.Run("default selection", func(t *testing.T) {
		result := harness.RunCommand(t, env, "settings", "theme")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "default")
	})

	t.Run("select music", func(t *testing.T) {
		result := harness.RunCommand(t, env, "settings", "theme", "music")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Selected theme: music")

		data, err := os.ReadFile(env.SettingsPath())
		require.NoError(t, err)
		var settings map[string]any
		require.NoError(t, json.Unmarshal(data, &settings))
		assert.Equal(t, "music", settings["theme"])
	})

	t.Run("show uses selection", func(t *testing.T) {
		result := harness.RunCommand(t, env, "themes", "show")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Theme: music (light)")
	})

	t.Run("unknown theme rejected", func(t *testing.T) {
		result := harness.RunCommand(t, env, "settings", "theme", "nonexistent")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "unknown theme")

		result = harness.RunCommand(t, env, "settings", "theme")
		harness.AssertStdoutContains(t, result, "music")
	})

	t.Run("stale selection degrades to default", func(t *testing.T) {
		require.NoError(t, os.WriteFile(env.SettingsPath(), []byte(`{"theme": "removed"}`), 0644))

		result := harness.RunCommand(t, env, "settings", "theme")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "removed (not found, using default)")
	})
}
