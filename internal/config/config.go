// Package config provides settings management for syncopener using Viper.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/internal/opener"
	"github.com/thoreinstein/syncopener/internal/paths"
	"github.com/thoreinstein/syncopener/internal/resolve"
)

// EnvPrefix prefixes environment variables that override settings.
const EnvPrefix = "SYNCOPENER"

// Setting keys.
const (
	KeyMatch       = "match"
	KeySettleDelay = "settle_delay"
	KeyEditor      = "editor"
	KeyExtensions  = "extensions"
	KeyExclude     = "exclude"
)

// Settings are the tool's own settings. The pairs themselves live in the
// workspace's pairs file.
type Settings struct {
	Match       string        `mapstructure:"match" yaml:"match"`
	SettleDelay time.Duration `mapstructure:"settle_delay" yaml:"settle_delay"`
	Editor      string        `mapstructure:"editor" yaml:"editor"`
	Extensions  []string      `mapstructure:"extensions" yaml:"extensions"`
	Exclude     []string      `mapstructure:"exclude" yaml:"exclude"`
}

// Dir returns the directory searched for config.yaml after the current
// directory. SYNCOPENER_CONFIG_DIR overrides the XDG location.
func Dir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	return paths.ConfigDir()
}

// Init initializes Viper with default settings.
// Call this once at application startup before accessing config values.
func Init() {
	// Forget a file chosen by an earlier Load.
	viper.SetConfigFile("")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyMatch, "segment")
	viper.SetDefault(KeySettleDelay, opener.DefaultSettleDelay)
	viper.SetDefault(KeyEditor, "")
	viper.SetDefault(KeyExtensions, resolve.DefaultExtensions)
	viper.SetDefault(KeyExclude, []string{})
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file uses defaults.
		case errors.As(err, &notFound), os.IsNotExist(err):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		default:
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	if errs := Validate(&s); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &s, nil
}

// Resolver builds a resolver from the settings.
func (s *Settings) Resolver() (*resolve.Resolver, error) {
	strategy, err := resolve.ParseStrategy(s.Match)
	if err != nil {
		return nil, err
	}
	opts := []resolve.Option{resolve.WithStrategy(strategy), resolve.WithExclude(s.Exclude)}
	if len(s.Extensions) > 0 {
		opts = append(opts, resolve.WithExtensions(s.Extensions))
	}
	return resolve.New(opts...)
}
