package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDirLinux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-specific path logic")
	}

	t.Run("XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		dir, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/config/pantry", dir)
	})

	t.Run("XDG_CONFIG_HOME unset falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		orig := platformDir.homeDir
		platformDir.homeDir = func() (string, error) { return "/home/alice", nil }
		t.Cleanup(func() { platformDir.homeDir = orig })

		dir, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/alice/.config/pantry", dir)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")

		dir, err := ResolveConfigDir("/from/flag")
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", dir)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/from/env")

		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/from/env", dir)
	})

	t.Run("relative flag made absolute", func(t *testing.T) {
		dir, err := ResolveConfigDir("rel/dir")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(dir))

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, "rel", "dir"), dir)
	})

	t.Run("falls back to platform default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")

		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Contains(t, dir, "pantry")
	})
}

func TestResolveDBFile(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvDBFile, "/from/env.json")

		path, err := ResolveDBFile("/from/flag.json", "/from/config.json")
		require.NoError(t, err)
		assert.Equal(t, "/from/flag.json", path)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDBFile, "/from/env.json")

		path, err := ResolveDBFile("", "/from/config.json")
		require.NoError(t, err)
		assert.Equal(t, "/from/config.json", path)
	})

	t.Run("env wins over cwd default", func(t *testing.T) {
		t.Setenv(EnvDBFile, "/from/env.json")

		path, err := ResolveDBFile("", "")
		require.NoError(t, err)
		assert.Equal(t, "/from/env.json", path)
	})

	t.Run("defaults to cwd data.json", func(t *testing.T) {
		t.Setenv(EnvDBFile, "")

		path, err := ResolveDBFile("", "")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultDBFileName), path)
	})

	t.Run("relative values made absolute", func(t *testing.T) {
		path, err := ResolveDBFile("rel.json", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path))
	})
}
