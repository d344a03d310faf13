// pouploadd is the purchase-order upload backend: credential-proxy endpoints,
// confirmed-record persistence, and the session guard.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/poflow/po-upload/internal/common"
	"github.com/poflow/po-upload/internal/export"
	"github.com/poflow/po-upload/internal/llm/openai"
	"github.com/poflow/po-upload/internal/repository"
	"github.com/poflow/po-upload/internal/server"
	"github.com/poflow/po-upload/internal/session"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("running schema migration", "error", err)
		os.Exit(1)
	}

	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	var checker session.Checker
	if cfg.Auth.Enabled {
		checker = session.NewProviderClient(session.ProviderConfig{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
			Timeout: cfg.Auth.Timeout,
		}, logger)
	}

	poRepo := repository.NewPurchaseOrderRepository(entc, logger)
	docRepo := repository.NewDocumentRepository(entc, logger)

	router := server.NewRouter(server.Deps{
		Proxy:      server.NewProxyHandlers(cfg.OCR, extractor, logger),
		PO:         server.NewPurchaseOrderHandlers(poRepo, export.NewService(logger), logger),
		Docs:       server.NewDocumentHandlers(docRepo, logger),
		Checker:    checker,
		CookieName: cfg.Auth.CookieName,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.Addr, "auth_enabled", cfg.Auth.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
