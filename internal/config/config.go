// Package config loads BigHelp settings from defaults, an optional YAML or
// TOML file and BIGHELP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/felixgeelhaar/bighelp/internal/ports"
)

// Defaults.
const (
	DefaultProbeTimeout     = 5 * time.Second
	DefaultConnectivityHost = "google.com"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultTheme            = "dark"
)

// DefaultWebsiteHosts are pinged by the website test.
var DefaultWebsiteHosts = []string{"google.com", "github.com", "ubuntu.com"}

// WebsiteHostCount is the number of hosts the website test reports on.
const WebsiteHostCount = 3

var (
	validFormats = []string{"text", "json"}
	validThemes  = []string{"dark", "light", "notty", "auto"}
)

// Config holds every tunable setting.
type Config struct {
	ProbeTimeout     time.Duration `mapstructure:"probe-timeout"`
	ConnectivityHost string        `mapstructure:"connectivity-host"`
	WebsiteHosts     []string      `mapstructure:"website-hosts"`
	LogLevel         string        `mapstructure:"log-level"`
	LogFormat        string        `mapstructure:"log-format"`
	Theme            string        `mapstructure:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ProbeTimeout:     DefaultProbeTimeout,
		ConnectivityHost: DefaultConnectivityHost,
		WebsiteHosts:     append([]string(nil), DefaultWebsiteHosts...),
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
		Theme:            DefaultTheme,
	}
}

// DefaultPath returns ~/.config/bighelp/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "bighelp", "config.yaml"), nil
}

// Load reads configuration. An explicit path must exist; when path is empty
// the default location is used if present.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BIGHELP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("probe-timeout", d.ProbeTimeout)
	v.SetDefault("connectivity-host", d.ConnectivityHost)
	v.SetDefault("website-hosts", d.WebsiteHosts)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)
	v.SetDefault("theme", d.Theme)

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		switch {
		case missing && explicit:
			return Config{}, &UserError{
				Code:       ErrCodeConfigNotFound,
				Message:    "config file not found",
				Context:    path,
				Suggestion: "Check the --config path or remove the flag to use defaults",
				Underlying: err,
			}
		case !missing:
			return Config{}, &UserError{
				Code:       ErrCodeConfigParse,
				Message:    "config file could not be parsed",
				Context:    path,
				Suggestion: "Config files must be YAML (.yaml, .yml) or TOML (.toml)",
				Underlying: err,
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &UserError{
			Code:       ErrCodeConfigParse,
			Message:    "config values have the wrong type",
			Context:    path,
			Suggestion: "probe-timeout takes a duration such as 5s; website-hosts takes a list",
			Underlying: err,
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs ValidationErrors

	if c.ProbeTimeout <= 0 {
		errs.add("probe-timeout", "must be greater than zero", "Use a duration such as 5s")
	}
	if strings.TrimSpace(c.ConnectivityHost) == "" {
		errs.add("connectivity-host", "must not be empty", "Use a host name such as google.com")
	}
	if len(c.WebsiteHosts) != WebsiteHostCount {
		errs.add("website-hosts",
			fmt.Sprintf("must list exactly %d hosts, got %d", WebsiteHostCount, len(c.WebsiteHosts)),
			"Example: [google.com, github.com, ubuntu.com]")
	}
	for i, h := range c.WebsiteHosts {
		if strings.TrimSpace(h) == "" {
			errs.add(fmt.Sprintf("website-hosts[%d]", i), "must not be empty", "")
		}
	}
	if _, err := ports.ParseLevel(c.LogLevel); err != nil {
		errs.add("log-level", err.Error(), "Use debug, info, warn or error")
	}
	if !oneOf(c.LogFormat, validFormats) {
		errs.add("log-format", fmt.Sprintf("unknown format %q", c.LogFormat), "Use text or json")
	}
	if !oneOf(c.Theme, validThemes) {
		errs.add("theme", fmt.Sprintf("unknown theme %q", c.Theme), "Use dark, light, notty or auto")
	}

	return errs.orNil()
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() ports.Level {
	l, err := ports.ParseLevel(c.LogLevel)
	if err != nil {
		return ports.LevelInfo
	}
	return l
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
