package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, filepath.Join("data", "modules.csv"), cfg.InputPaths().Modules)
	assert.Equal(t, filepath.Join("data", "sessions.csv"), cfg.SessionsPath())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	//** Arrange
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dataDir": "/srv/timetable", "studentsFile": "", "seed": 7, "logLevel": "debug"}`), 0666))

	//** Act
	cfg, err := Load(path)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, "/srv/timetable", cfg.DataDir)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "rooms.csv", cfg.RoomsFile)

	paths := cfg.InputPaths()
	assert.Equal(t, "/srv/timetable/rooms.csv", paths.Rooms)
	assert.Empty(t, paths.Students)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	require.NoError(t, os.WriteFile(path, []byte(`{"dataDir": `), 0666))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"unknownKey": 1}`), 0666))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	//** Arrange
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"dataDir": "from-file", "seed": 7}`), 0666))
	t.Setenv(EnvDataDir, "from-env")
	t.Setenv(EnvOutput, "out.csv")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvLogLevel, "warn")

	//** Act
	cfg, err := Load(path)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.DataDir)
	assert.Equal(t, "out.csv", cfg.OutputFile)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadInvalidEnvironment(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")

	_, err := Load("")

	assert.Error(t, err)
}
