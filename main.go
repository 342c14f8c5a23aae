package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ultimate-atpl/study-battle-bot/app"
	"github.com/ultimate-atpl/study-battle-bot/config"
	"github.com/ultimate-atpl/study-battle-bot/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, cfg.Observability.Environment)

	application := &app.App{}
	if err := application.Initialize(ctx, cfg, logger); err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}
}
