package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultFilter, cfg.DefaultFilter)
	assert.True(t, cfg.ShowGreeting())
	assert.False(t, cfg.StrictExit)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.ConfigPath())
	assert.NoFileExists(t, cfg.ConfigPath())
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	cfg := NewDefault()
	cfg.SetDir(dir)
	cfg.Output = "compact"
	cfg.DataFile = "/tmp/tasks.json"
	cfg.StrictExit = true
	cfg.SetGreeting(false)
	require.NoError(t, cfg.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "compact", loaded.Output)
	assert.Equal(t, "/tmp/tasks.json", loaded.DataFile)
	assert.True(t, loaded.StrictExit)
	assert.False(t, loaded.ShowGreeting())
}

func TestLoadMigratesUnversionedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("strict_exit: true\n"), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultFilter, cfg.DefaultFilter)
	assert.True(t, cfg.StrictExit)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"future version": "version: 99\noutput: table\ndefault_filter: all\n",
		"bad output":     "version: 1\noutput: xml\ndefault_filter: all\n",
		"bad filter":     "version: 1\noutput: table\ndefault_filter: someday\n",
		"not yaml":       "version: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(body), 0o600))

			_, err := Load(dir)
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvOutput, "JSON")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output, "Load leaves overrides out")

	cfg.ApplyEnv()
	assert.Equal(t, "json", cfg.Output)

	t.Setenv(EnvOutput, "xml")
	cfg = NewDefault()
	cfg.ApplyEnv()
	assert.Equal(t, DefaultOutput, cfg.Output, "invalid overrides are ignored")
}

func TestDefaultDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/etc/ttd")
	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, "/etc/ttd", dir)

	home := t.TempDir()
	t.Setenv(EnvConfigDir, "")
	t.Setenv("HOME", home)
	dir, err = DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "ttd"), dir)
}

func TestDataPathResolution(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDataFile, "")

	p, err := DataPathOf(NewDefault()).Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ttd.json"), p)

	cfg := NewDefault()
	cfg.DataFile = "~/notes/tasks.json"
	p, err = DataPathOf(cfg).Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes", "tasks.json"), p)

	t.Setenv(EnvDataFile, "/srv/ttd.json")
	p, err = DataPathOf(cfg).Path()
	require.NoError(t, err)
	assert.Equal(t, "/srv/ttd.json", p)
}
