package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-docqa-client/internal/bootstrap"
	"ai-docqa-client/internal/config"
	"ai-docqa-client/internal/pkg/logger"
	"ai-docqa-client/internal/server"
	"ai-docqa-client/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg, sysLogger)
	defer container.Close()

	// 4. Start Background Services
	if err := container.Start(ctx); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	if msg, err := container.Backend.Ping(ctx); err != nil {
		sysLogger.Warn("SERVER", "Backend not reachable", map[string]interface{}{"url": cfg.Backend.BaseURL, "error": err.Error()})
	} else {
		sysLogger.Info("SERVER", "Backend reachable", map[string]interface{}{"url": cfg.Backend.BaseURL, "message": msg})
	}
	go container.CorpusService.Mount(ctx)

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sysLogger.Error("SERVER", "Shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		sysLogger.Error("SERVER", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
