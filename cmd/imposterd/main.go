package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/soapsrc/ImposterGame/internal/adapters/http"
	"github.com/soapsrc/ImposterGame/internal/adapters/llm/cohere"
	"github.com/soapsrc/ImposterGame/internal/app"
	"github.com/soapsrc/ImposterGame/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if cfg.CohereAPIKey == "" {
		logger.Warn("COHERE_API_KEY is not set; hint requests will fail")
	}

	llmClient := cohere.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.CohereAPIKey,
		cfg.CohereBaseURL,
		cfg.CohereModel,
		logger,
	)

	svc := app.NewHintService(llmClient)
	e := httpadapter.NewServer(svc, cfg.StaticDir, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "static_dir", cfg.StaticDir)
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
