package main

import (
	"context"
	"fmt"

	"github.com/StefanSilver/dtlpy/config"
	"github.com/StefanSilver/dtlpy/internal/fakeplatform"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Infof(ctx, "Starting fake platform on :%d", cfg.FakePlatform.Port)

	// 3. Server
	srv, err := fakeplatform.New(fakeplatform.Config{
		Logger: logger,
		Port:   cfg.FakePlatform.Port,
		Mode:   cfg.FakePlatform.Mode,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create fake platform: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "Fake platform stopped: %v", err)
	}
}
