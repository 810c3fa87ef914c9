package config

import (
	"os"
	"path/filepath"
	"strings"

	"foldercolor/internal/errors"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "FOLDERCOLOR_CONFIG"

// Config represents the application configuration structure.
// It describes how to reach the external folder color tool and how the
// picker logs and looks. The picker itself stores nothing here.
type Config struct {
	Tool struct {
		Path  string `yaml:"path"`  // Executable name or path of papirus-folders
		Theme string `yaml:"theme"` // Icon theme passed as --theme
		Sudo  bool   `yaml:"sudo"`  // Prefix apply calls with sudo
	} `yaml:"tool"`
	Log struct {
		File  string `yaml:"file"`  // Log file; empty disables logging
		Debug bool   `yaml:"debug"` // Enable debug lines
		JSON  bool   `yaml:"json"`  // JSON lines instead of text
	} `yaml:"log"`
	UI struct {
		Theme string `yaml:"theme"` // Accent palette name, see ListThemes
	} `yaml:"ui"`
}

// DefaultPath returns $XDG_CONFIG_HOME/foldercolor/config.yaml, falling back
// to ~/.config/foldercolor/config.yaml. FOLDERCOLOR_CONFIG wins over both.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "foldercolor", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "foldercolor", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "error reading config file %s", path)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.Wrapf(err, "error parsing config file %s", path)
	}

	if tempCfg.Tool.Path != "" {
		cfg.Tool.Path = tempCfg.Tool.Path
	}
	if tempCfg.Tool.Theme != "" {
		cfg.Tool.Theme = tempCfg.Tool.Theme
	}
	cfg.Tool.Sudo = tempCfg.Tool.Sudo

	cfg.Log.File = tempCfg.Log.File
	cfg.Log.Debug = tempCfg.Log.Debug
	cfg.Log.JSON = tempCfg.Log.JSON

	if tempCfg.UI.Theme != "" {
		cfg.UI.Theme = tempCfg.UI.Theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Tool.Path = "papirus-folders"
	cfg.Tool.Theme = "Papirus-Dark"
	cfg.Tool.Sudo = false
	cfg.UI.Theme = "default"
	return cfg
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}
	if c.Tool.Path == "" {
		return errors.NewConfigError("value is required", "tool.path", errors.InvalidConfig, nil)
	}
	if c.Tool.Theme == "" {
		return errors.NewConfigError("value is required", "tool.theme", errors.InvalidConfig, nil)
	}
	if _, ok := themes[c.UI.Theme]; !ok {
		return errors.NewConfigError("unknown theme", "ui.theme", errors.InvalidConfig,
			errors.Newf("%q, want one of %s", c.UI.Theme, strings.Join(ListThemes(), ", ")))
	}
	return nil
}

var themes = map[string]map[string]string{
	"default": {
		"primary":  "213", // Purple
		"success":  "114", // Green
		"warning":  "220", // Yellow
		"error":    "196", // Red
		"info":     "39",  // Blue
		"emphasis": "212", // Light Pink
		"border":   "213", // Purple
	},
	"dark": {
		"primary":  "105",
		"success":  "78",
		"warning":  "214",
		"error":    "160",
		"info":     "33",
		"emphasis": "147",
		"border":   "105",
	},
	"light": {
		"primary":  "135",
		"success":  "150",
		"warning":  "222",
		"error":    "210",
		"info":     "117",
		"emphasis": "219",
		"border":   "135",
	},
	"monochrome": {
		"primary":  "245",
		"success":  "252",
		"warning":  "241",
		"error":    "255",
		"info":     "248",
		"emphasis": "255",
		"border":   "245",
	},
	"ocean": {
		"primary":  "31",
		"success":  "36",
		"warning":  "220",
		"error":    "196",
		"info":     "33",
		"emphasis": "51",
		"border":   "31",
	},
	"sunset": {
		"primary":  "208",
		"success":  "154",
		"warning":  "214",
		"error":    "196",
		"info":     "69",
		"emphasis": "203",
		"border":   "208",
	},
}

// GetTheme returns the accent palette for name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes["default"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}
