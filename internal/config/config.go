// Package config loads settings from defaults, an optional config.yaml,
// TODO_* environment variables and command-line flags, in rising priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todolist/internal/view"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TODO"

	KeyTheme   = "theme"
	KeyFilter  = "filter"
	KeyColor   = "color"
	KeyGroup   = "group"
	KeyVerbose = "verbose"
	KeyLogFile = "log_file"
)

// Config holds the resolved settings.
type Config struct {
	Theme   string
	Filter  view.Filter
	Color   string
	Group   bool
	Verbose bool
	LogFile string
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"theme":    KeyTheme,
	"filter":   KeyFilter,
	"color":    KeyColor,
	"group":    KeyGroup,
	"verbose":  KeyVerbose,
	"log-file": KeyLogFile,
}

// DefaultDir is $XDG_CONFIG_HOME/todolist or its platform equivalent.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".todolist"
	}
	return filepath.Join(dir, "todolist")
}

// Load resolves the configuration. A missing config.yaml is not an error.
// flags may be nil; only flags the user actually set override other sources.
func Load(configDir string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyFilter, view.All.String())
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyGroup, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFile, "")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if configDir == "" {
		configDir = DefaultDir()
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, k := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(k, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	f, err := view.ParseFilter(v.GetString(KeyFilter))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", KeyFilter, err)
	}
	return Config{
		Theme:   v.GetString(KeyTheme),
		Filter:  f,
		Color:   v.GetString(KeyColor),
		Group:   v.GetBool(KeyGroup),
		Verbose: v.GetBool(KeyVerbose),
		LogFile: v.GetString(KeyLogFile),
	}, nil
}
