// Package config loads navmenu settings with Viper from defaults, an optional
// YAML config file, NAVMENU_ prefixed environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/server"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "NAVMENU"

	// KeyPort is the HTTP listen port.
	KeyPort = "port"

	// KeyHost is the interface the server binds to.
	KeyHost = "host"

	// KeyLogLevel is the log level name (debug, info, warn, error).
	KeyLogLevel = "log-level"

	// KeyMenuFile is the path of the YAML menu definition.
	KeyMenuFile = "file"

	// KeyKind is the outer element the menu renders as.
	KeyKind = "kind"

	// KeyWatch enables reloading the menu file on change.
	KeyWatch = "watch"

	// KeyShutdownTimeout is the grace period for in-flight requests.
	KeyShutdownTimeout = "shutdown-timeout"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	LogLevel        string        `mapstructure:"log-level"`
	MenuFile        string        `mapstructure:"file"`
	Kind            string        `mapstructure:"kind"`
	Watch           bool          `mapstructure:"watch"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, server.DefaultPort)
	v.SetDefault(KeyHost, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMenuFile, "menu.yaml")
	v.SetDefault(KeyKind, string(menu.UL))
	v.SetDefault(KeyWatch, false)
	v.SetDefault(KeyShutdownTimeout, server.DefaultShutdownTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every flag in fs that matches a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(f.Name, f)
	})
	if err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// Load reads the optional config file and unmarshals the merged settings.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if err := menu.Kind(c.Kind).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidConfig)
	}
	return nil
}
