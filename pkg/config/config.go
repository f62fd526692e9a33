// Package config loads runtime settings for the availability console.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConsoleConfig captures runtime settings for the availability console.
type ConsoleConfig struct {
	ListenAddr       string        `mapstructure:"listen_addr"`
	APIBaseURL       string        `mapstructure:"api_base_url"`
	APIKey           string        `mapstructure:"api_key"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFormat        string        `mapstructure:"log_format"`
	MetricsNamespace string        `mapstructure:"metrics_namespace"`
	Locale           string        `mapstructure:"locale"`
	TimeLayout       string        `mapstructure:"time_layout"`
	Timezone         string        `mapstructure:"timezone"`
	Tracing          bool          `mapstructure:"tracing"`
	RateLimit        int           `mapstructure:"rate_limit"`
	FlashTTL         time.Duration `mapstructure:"flash_ttl"`
}

// Load reads configuration from defaults, ./configs/config.*, and AVAIL_* env vars.
func Load() (ConsoleConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath("./configs")
	return load(v)
}

// LoadFile reads configuration from an explicit file plus env vars.
func LoadFile(path string) (ConsoleConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (ConsoleConfig, error) {
	v.SetEnvPrefix("AVAIL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8090")
	v.SetDefault("api_base_url", "http://localhost:8080/api")
	v.SetDefault("api_key", "")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("metrics_namespace", "goavail")
	v.SetDefault("locale", "en")
	v.SetDefault("time_layout", "2006-01-02 15:04:05")
	v.SetDefault("timezone", "Local")
	v.SetDefault("tracing", false)
	v.SetDefault("rate_limit", 30)
	v.SetDefault("flash_ttl", "15s")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return ConsoleConfig{}, fmt.Errorf("load config: %w", err)
		}
	}

	var cfg ConsoleConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return ConsoleConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return ConsoleConfig{}, err
	}
	return cfg, nil
}

// Validate checks values viper cannot type-check.
func (c ConsoleConfig) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	if c.FlashTTL < 0 {
		return fmt.Errorf("flash_ttl must not be negative")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone; "Local" and "" mean the host zone.
func (c ConsoleConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
