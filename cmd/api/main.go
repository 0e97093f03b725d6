package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-insurance-leads/internal/adapters/auth/statictoken"
	"pet-insurance-leads/internal/config"
	"pet-insurance-leads/internal/platform/logger"
	"pet-insurance-leads/internal/platform/telemetry"
	"pet-insurance-leads/internal/router"
)

// @title pet-insurance-leads API
// @version 1.0
// @description Captura de leads de seguros para mascotas sobre GitHub Issues y export para administración.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.NewProviders(ctx, cfg.OTLPEndpoint, cfg.AppName, cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()

	store, closeStore, err := router.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	if cfg.AdminToken == "" {
		lg.Warn("ADMIN_TOKEN is empty; export endpoint will reject every request", nil)
	}

	r := router.NewRouter(router.Options{
		Store:         store,
		AdminVerifier: statictoken.NewVerifier(cfg.AdminToken),
		Logger:        lg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		// El list tiene su propio tope; se deja margen para escribir el CSV.
		WriteTimeout: cfg.ListTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", map[string]any{"addr": srv.Addr, "backend": cfg.Backend()})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		lg.Info("shutting down", nil)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", map[string]any{"error": err})
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("http shutdown", map[string]any{"error": err})
	}
	if err := closeStore(); err != nil {
		lg.Error("store close", map[string]any{"error": err})
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		lg.Error("telemetry shutdown", map[string]any{"error": err})
	}
}
