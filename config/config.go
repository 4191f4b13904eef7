// Package config persists the one user preference the tool keeps: the
// color theme.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	themeKey   = "theme.dark"
	configName = "qrbrandr"
)

// Load reads the persisted preferences from dir (the user config dir when
// empty). A missing config file is not an error; defaults apply.
func Load(dir string) error {
	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(resolveDir(dir))
	viper.SetDefault(themeKey, false)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// DarkMode reports the persisted theme preference.
func DarkMode() bool {
	return viper.GetBool(themeKey)
}

// SaveDarkMode persists the theme preference.
func SaveDarkMode(dark bool, dir string) error {
	dir = resolveDir(dir)
	viper.Set(themeKey, dark)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create config directory")
	}
	if err := viper.WriteConfigAs(filepath.Join(dir, configName+".yaml")); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

func resolveDir(dir string) string {
	if dir != "" {
		return dir
	}
	if d, err := os.UserConfigDir(); err == nil {
		return filepath.Join(d, configName)
	}
	return "."
}
