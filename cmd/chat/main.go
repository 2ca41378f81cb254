package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ai-docqa-client/internal/bootstrap"
	"ai-docqa-client/internal/config"
	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/internal/terminal"
)

func main() {
	cfg := config.Load()

	// Logs go to the file only so they never interleave with the prompt.
	sysLogger := logger.NewIsolatedLogger(cfg.App.LogFilePath)
	defer sysLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	container := bootstrap.NewContainer(cfg, sysLogger)
	defer container.Close()
	if err := container.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	app := terminal.NewApp(container.ChatService, container.CorpusService, container.UploadService, os.Stdin, os.Stdout)
	app.Renderer().Banner(cfg.Backend.BaseURL)

	if _, err := container.Backend.Ping(ctx); err != nil {
		app.Renderer().Error(fmt.Errorf("backend not reachable at %s", cfg.Backend.BaseURL))
	}
	container.CorpusService.Mount(ctx)

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}
