package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from .env files and environment variables.
type Config struct {
	AppName    string `mapstructure:"app_name"`
	Env        string `mapstructure:"app_env"`
	LogLevel   string `mapstructure:"log_level"`
	APIBaseURL string `mapstructure:"api_base_url"`

	HTTPTimeoutSeconds  int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout         time.Duration `mapstructure:"-"`
	UserAgentTTLSeconds int64         `mapstructure:"user_agent_ttl_seconds"`
	UserAgentTTL        time.Duration `mapstructure:"-"`
}

// DefaultEnvFile is read, if present, before the environment.
const DefaultEnvFile = "configs/.env"

// Load reads configuration from DefaultEnvFile and environment variables.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom is Load with an explicit .env path. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	v := viper.New()

	v.SetDefault("app_name", "douban-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base_url", "http://localhost:3000")
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("user_agent_ttl_seconds", int64(time.Hour/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("invalid api_base_url (must not be empty)")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	if cfg.UserAgentTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid user_agent_ttl_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	cfg.UserAgentTTL = time.Duration(cfg.UserAgentTTLSeconds) * time.Second

	return &cfg, nil
}
