package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"managerpro/config"
	"managerpro/handlers"
	"managerpro/internal/database"
	"managerpro/internal/localstore"
	"managerpro/internal/remote"
	"managerpro/models"
	"managerpro/services/auth"
	"managerpro/services/billing"
	"managerpro/services/catalog"
	"managerpro/services/plans"
	syncsvc "managerpro/services/sync"
	"managerpro/utils"
)

func main() {
	configPath := flag.String("config", "manager_pro_server.json", "path to the server configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	manager := config.NewManager(configPath)
	settings, err := manager.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	setupLogging(settings.Log)

	store, err := localstore.New(afero.NewOsFs(), settings.Data.Dir)
	if err != nil {
		return err
	}

	backend := remote.Select(settings.Remote.URL, settings.Remote.AnonKey)
	if backend.Enabled() {
		slog.Info("remote backend enabled", "url", settings.Remote.URL)
	} else {
		slog.Info("remote backend not configured, running local-only")
	}

	interval := time.Duration(settings.Sync.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = syncsvc.DefaultInterval
	}
	sync := syncsvc.New(store, backend, interval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sync.Initialize(ctx); err != nil {
		slog.Warn("startup sync failed, continuing with local data", "error", err)
	}
	sync.Start()
	defer sync.Stop()

	db, err := database.NewDB(database.Config{
		DatabasePath: filepath.Join(settings.Data.Dir, "payments.db"),
	})
	if err != nil {
		return fmt.Errorf("open payments ledger: %w", err)
	}
	defer db.Close()

	authSvc := auth.NewService(sync, store)
	billingSvc := billing.NewService(sync, db.Payments)
	systemConfig := localstore.NewObject[models.SystemConfig](store, "manager_pro_config")

	router := utils.NewRouter()
	handlers.RegisterRoutes(router, handlers.Deps{
		Auth:     handlers.NewAuthHandler(authSvc),
		Users:    handlers.NewUsersHandler(sync, authSvc),
		Customer: handlers.NewCustomersHandler(sync, db.Payments),
		Servers:  handlers.NewServersHandler(sync),
		Banners:  handlers.NewBannersHandler(sync),
		Billing:  handlers.NewBillingHandler(sync, billingSvc, db.Payments, systemConfig),
		Plans:    handlers.NewPlansHandler(plans.NewService()),
		Catalog:  handlers.NewCatalogHandler(catalog.NewService()),
		Settings: handlers.NewSettingsHandler(systemConfig),
		Stats:    handlers.NewStatsHandler(sync),
		Gate:     authSvc,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

// setupLogging routes slog to stderr, plus a rotated file when one is
// configured.
func setupLogging(cfg config.LogSettings) {
	var out io.Writer = os.Stderr
	if cfg.File != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, nil)))
}
