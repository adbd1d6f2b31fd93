package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all SDK and tooling configuration.
type Config struct {
	Environment EnvironmentConfig
	Platform    PlatformConfig
	Auth        AuthConfig
	Logger      LoggerConfig

	// Local fake platform (cmd/fakeplatform)
	FakePlatform FakePlatformConfig
}

// EnvironmentConfig selects which platform backend to talk to.
type EnvironmentConfig struct {
	Name string            // development | rc | production
	URLs map[string]string // environment name -> base URL
}

type PlatformConfig struct {
	BaseURL   string  // resolved from Environment unless set explicitly
	RateLimit float64 // requests per second allowed against the gateway
	RateBurst int
}

type AuthConfig struct {
	APIToken     string // static bearer token; takes precedence when set
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type FakePlatformConfig struct {
	Port int
	Mode string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/dtlpy/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/dtlpy/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.URLs = viper.GetStringMapString("environment.urls")

	cfg.Platform.BaseURL = viper.GetString("platform.base_url")
	cfg.Platform.RateLimit = viper.GetFloat64("platform.rate_limit")
	cfg.Platform.RateBurst = viper.GetInt("platform.rate_burst")
	if cfg.Platform.BaseURL == "" {
		cfg.Platform.BaseURL = cfg.Environment.URLs[cfg.Environment.Name]
	}
	if cfg.Platform.BaseURL == "" {
		return nil, fmt.Errorf("no base URL for environment %q", cfg.Environment.Name)
	}

	cfg.Auth.APIToken = viper.GetString("auth.api_token")
	cfg.Auth.ClientID = viper.GetString("auth.client_id")
	cfg.Auth.ClientSecret = viper.GetString("auth.client_secret")
	cfg.Auth.RefreshToken = viper.GetString("auth.refresh_token")
	cfg.Auth.TokenURL = viper.GetString("auth.token_url")
	if token := viper.GetString("dlp_api_token"); token != "" {
		cfg.Auth.APIToken = token
	}

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.FakePlatform.Port = viper.GetInt("fake_platform.port")
	cfg.FakePlatform.Mode = viper.GetString("fake_platform.mode")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.urls", map[string]string{
		"development": "https://dev-gate.dataloop.ai/api/v1",
		"rc":          "https://rc-gate.dataloop.ai/api/v1",
		"production":  "https://gate.dataloop.ai/api/v1",
	})

	viper.SetDefault("platform.rate_limit", 10.0)
	viper.SetDefault("platform.rate_burst", 20)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("fake_platform.port", 8484)
	viper.SetDefault("fake_platform.mode", "release")
}
