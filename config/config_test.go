package config_test

import (
	"testing"

	"github.com/StefanSilver/dtlpy/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Environment.Name != "development" {
		t.Errorf("unexpected default environment: %q", cfg.Environment.Name)
	}
	if cfg.Platform.BaseURL != "https://dev-gate.dataloop.ai/api/v1" {
		t.Errorf("base URL not resolved from environment: %q", cfg.Platform.BaseURL)
	}
	if cfg.Platform.RateLimit <= 0 {
		t.Errorf("expected a default rate limit, got %f", cfg.Platform.RateLimit)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("unexpected default log level: %q", cfg.Logger.Level)
	}
	if cfg.FakePlatform.Port == 0 {
		t.Error("expected a default fake platform port")
	}
}
