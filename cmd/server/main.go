package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RaidanPro1/CPA-YePortal/internal/ai"
	"github.com/RaidanPro1/CPA-YePortal/internal/auth"
	"github.com/RaidanPro1/CPA-YePortal/internal/config"
	"github.com/RaidanPro1/CPA-YePortal/internal/db"
	"github.com/RaidanPro1/CPA-YePortal/internal/handlers"
	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
	"github.com/RaidanPro1/CPA-YePortal/internal/logs"
	"github.com/RaidanPro1/CPA-YePortal/internal/report"
	"github.com/RaidanPro1/CPA-YePortal/internal/store"
	"github.com/RaidanPro1/CPA-YePortal/internal/views"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logs.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	s := store.New()
	logger.Debug("translations loaded", slog.Int("keys", i18n.Len()))

	authenticator, err := auth.NewAuthenticator(s, cfg.Auth)
	if err != nil {
		return err
	}
	for _, msg := range startupWarnings(cfg, authenticator.AdminEnabled()) {
		logger.Warn(msg)
	}

	renderer, err := views.New()
	if err != nil {
		return err
	}

	analyzer := ai.NewGemini(cfg.AI, &http.Client{Timeout: cfg.AI.Timeout}, logger)

	opts := []report.Option{report.WithUploadsDir(cfg.Uploads.Dir)}

	if cfg.Database.URL != "" {
		database, err := db.New(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := restoreReports(ctx, s, database); err != nil {
			return err
		}
		opts = append(opts, report.WithArchive(database))
		logger.Info("report archive connected")
	}

	h := handlers.New(handlers.Deps{
		Store:         s,
		Auth:          authenticator,
		Sessions:      auth.NewSessions(cfg.Session),
		Reports:       report.NewService(s, analyzer, logger, opts...),
		Views:         renderer,
		Logger:        logger,
		SlideInterval: cfg.Home.SlideInterval,
		UploadsDir:    cfg.Uploads.Dir,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", cfg.HTTP.Port),
		Handler:           h.Routes(),
		ReadTimeout:       cfg.HTTP.Timeouts.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.Timeouts.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.Timeouts.WriteTimeout,
		IdleTimeout:       cfg.HTTP.Timeouts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", "http://"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// startupWarnings lists configuration gaps an operator should close.
func startupWarnings(cfg *config.Config, adminEnabled bool) []string {
	var warnings []string
	if !adminEnabled {
		warnings = append(warnings, "admin login disabled, set auth.adminPassword or run cmd/create-admin and set auth.adminPasswordHash")
	}
	if cfg.InsecureSessionSecret() {
		warnings = append(warnings, "session cookies are signed with the default secret, set "+config.EnvPrefix+"SESSION_SECRET")
	}
	if cfg.AI.APIKey == "" {
		warnings = append(warnings, "AI key missing, report assessments will use the fallback text")
	}
	return warnings
}

// restoreReports loads archived reports into the store, keeping newest first.
func restoreReports(ctx context.Context, s *store.Store, database *db.Database) error {
	reports, err := database.ListReports(ctx)
	if err != nil {
		return err
	}
	for i := len(reports) - 1; i >= 0; i-- {
		s.AddReport(reports[i])
	}
	return nil
}
