package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".smartdirs.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromIniFile(t *testing.T) {
	path := writeConfig(t, `[smartdirs]
timezone = America/New_York
time_format_with_seconds = true
log_dir = /var/log/smartdirs
`)

	v, err := NewViper(path)
	require.NoError(t, err)

	settings := Load(v)
	assert.Equal(t, "America/New_York", settings.Timezone)
	assert.True(t, settings.WithSeconds)
	assert.Equal(t, "/var/log/smartdirs", settings.LogDir)
	assert.Equal(t, filepath.Join("/var/log/smartdirs", "smartdirs.log"), settings.LogPath())
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "[smartdirs]\n")

	v, err := NewViper(path)
	require.NoError(t, err)

	settings := Load(v)
	assert.Empty(t, settings.Timezone)
	assert.False(t, settings.WithSeconds)
	assert.Empty(t, settings.LogDir)
	assert.Empty(t, settings.LogPath(), "logging is disabled without log_dir")
}

func TestLoadExpandsHomeInLogDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `[smartdirs]
log_dir = ~/dirlogs
`)

	v, err := NewViper(path)
	require.NoError(t, err)

	settings := Load(v)
	assert.Equal(t, filepath.Join(home, "dirlogs"), settings.LogDir)
}

func TestNewViperMissingHomeConfigIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v, err := NewViper("")
	require.NoError(t, err)

	settings := Load(v)
	assert.Empty(t, settings.LogDir)
}

func TestNewViperMalformedFile(t *testing.T) {
	path := writeConfig(t, "this is not ini [at all")

	_, err := NewViper(path)
	assert.Error(t, err)
}
