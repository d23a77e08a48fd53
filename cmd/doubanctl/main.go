package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adda-Baaj/douban-client/internal/app"
	"github.com/Adda-Baaj/douban-client/internal/cli"
	"github.com/Adda-Baaj/douban-client/internal/config"
	"github.com/Adda-Baaj/douban-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "doubanctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer logger.Close()

	build := func() (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}

		log, err := logger.Init(cfg)
		if err != nil {
			return nil, fmt.Errorf("init logger: %w", err)
		}
		logger.DebugObj("doubanctl starting", "config", cfg)

		return app.New(cfg, log)
	}

	if err := cli.NewRootCommand(build).ExecuteContext(ctx); err != nil {
		logger.ErrorObj("doubanctl command failed", "error", err.Error())
		return err
	}
	return nil
}
