package config_test

import (
	"path/filepath"
	"testing"

	"foldercolor/internal/config"
	"foldercolor/internal/errors"
	"foldercolor/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validYAML = `
tool:
  path: /usr/local/bin/papirus-folders
  theme: Papirus
  sudo: true
log:
  file: /tmp/foldercolor.log
  debug: true
ui:
  theme: ocean
`
	partialYAML = `
tool:
  theme: ePapirus
`
	invalidSyntaxYAML = `
tool:
  path: "unterminated
`
	invalidThemeYAML = `
ui:
  theme: neon
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		path := testutils.WriteConfig(t, validYAML)
		cfg, err := config.LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, "/usr/local/bin/papirus-folders", cfg.Tool.Path)
		assert.Equal(t, "Papirus", cfg.Tool.Theme)
		assert.True(t, cfg.Tool.Sudo)
		assert.Equal(t, "/tmp/foldercolor.log", cfg.Log.File)
		assert.True(t, cfg.Log.Debug)
		assert.Equal(t, "ocean", cfg.UI.Theme)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := testutils.WriteConfig(t, partialYAML)
		cfg, err := config.LoadConfigFile(path)

		require.NoError(t, err)
		assert.Equal(t, "papirus-folders", cfg.Tool.Path)
		assert.Equal(t, "ePapirus", cfg.Tool.Theme)
		assert.False(t, cfg.Tool.Sudo)
		assert.Equal(t, "default", cfg.UI.Theme)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("invalid syntax", func(t *testing.T) {
		path := testutils.WriteConfig(t, invalidSyntaxYAML)
		_, err := config.LoadConfigFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing config file")
	})

	t.Run("unknown ui theme", func(t *testing.T) {
		path := testutils.WriteConfig(t, invalidThemeYAML)
		_, err := config.LoadConfigFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
		assert.Contains(t, err.Error(), "want one of default, dark, light, monochrome, ocean, sunset")
	})
}

func TestValidate(t *testing.T) {
	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.Tool.Path = ""
	err := cfg.Validate()
	require.Error(t, err)
	var ce *errors.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "tool.path", ce.Param())

	cfg = config.New()
	cfg.Tool.Theme = ""
	assert.Error(t, cfg.Validate())

	var nilCfg *config.Config
	assert.True(t, errors.IsInvalidConfig(nilCfg.Validate()))
}

func TestDefaultPath(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(config.EnvConfigPath, "/etc/foldercolor.yaml")
		path, err := config.DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, "/etc/foldercolor.yaml", path)
	})

	t.Run("xdg", func(t *testing.T) {
		t.Setenv(config.EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		path, err := config.DefaultPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/xdg", "foldercolor", "config.yaml"), path)
	})
}

func TestThemes(t *testing.T) {
	for _, name := range config.ListThemes() {
		theme := config.GetTheme(name)
		assert.NotEmpty(t, theme["primary"], name)
		assert.NotEmpty(t, theme["error"], name)
	}
	assert.Equal(t, config.GetTheme("default"), config.GetTheme("missing"))
}
