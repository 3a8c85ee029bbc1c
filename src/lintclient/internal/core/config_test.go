package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		expectError bool
		level       string
	}{
		{
			name: "later files override earlier ones",
			files: map[string]string{
				"meta.yaml":        "files:\n  - base.yaml\n  - development.yaml\n",
				"base.yaml":        "logging:\n  level: info\n",
				"development.yaml": "logging:\n  level: debug\n",
			},
			level: "debug",
		},
		{
			name: "missing listed files are skipped",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n  - local.yaml\n",
				"base.yaml": "logging:\n  level: warn\n",
			},
			level: "warn",
		},
		{
			name: "no listed file exists",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n",
			},
			expectError: true,
		},
		{
			name:        "no meta file",
			files:       map[string]string{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(_configDirEnv, writeConfigDir(t, tt.files))

			provider, err := NewConfig()
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, provider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "config", provider.Name())
			assert.Equal(t, tt.level, provider.Get("logging.level").String())
		})
	}
}

func TestNewConfig_ExpandsEnvironment(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n",
		"base.yaml": "settings:\n  path: ${LINTCLIENT_SETTINGS:/etc/lint/settings.yaml}\n",
	})
	t.Setenv(_configDirEnv, dir)
	t.Setenv("LINTCLIENT_SETTINGS", "/home/dev/settings.yaml")

	provider, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "/home/dev/settings.yaml", provider.Get("settings.path").String())
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv(_configDirEnv, "")
	assert.Equal(t, _defaultConfigDir, getConfigDir())

	t.Setenv(_configDirEnv, "/custom/config/path")
	assert.Equal(t, "/custom/config/path", getConfigDir())
}
