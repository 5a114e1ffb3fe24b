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

	"agent-sticker-kiosk/internal/config"
	"agent-sticker-kiosk/internal/gemini"
	"agent-sticker-kiosk/internal/handlers"
	"agent-sticker-kiosk/internal/httpclient"
	"agent-sticker-kiosk/internal/janitor"
	"agent-sticker-kiosk/internal/mailer"
	"agent-sticker-kiosk/internal/session"
	"agent-sticker-kiosk/internal/sticker"
	"agent-sticker-kiosk/internal/storage"
	"agent-sticker-kiosk/internal/submit"
	"agent-sticker-kiosk/internal/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)

	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.HTTPTimeout,
	})

	gem := gemini.New(gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		APIVersion: cfg.GeminiAPIVersion,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	engine := sticker.NewEngine(sticker.EngineOptions{
		HTTPClient: httpClient,
		FramePath:  cfg.FramePath,
		Logger:     logger,
	})

	store := buildStore(cfg, httpClient, logger)

	notifier := workflow.New(workflow.Options{
		URL:        cfg.WebhookURL,
		AuthHeader: cfg.WebhookAuthHeader,
		AuthValue:  cfg.WebhookAuthValue,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	var mail *mailer.Mailer
	if cfg.SMTPConfigured() {
		mail, err = mailer.New(mailer.Options{
			Host:       cfg.SMTPHost,
			Port:       cfg.SMTPPort,
			Username:   cfg.SMTPUser,
			Password:   cfg.SMTPPass,
			From:       cfg.SMTPFrom,
			HTTPClient: httpClient,
			Logger:     logger,
		})
		if err != nil {
			logger.Error("mailer init failed", "err", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("SMTP not configured, email endpoint disabled")
	}

	sessions := session.NewStore()

	coordinator := submit.New(submit.Options{
		Sessions: sessions,
		Store:    store,
		Notifier: notifier,
		Logger:   logger,
	})

	jan, err := janitor.New(janitor.Options{
		Sessions:   sessions,
		SessionTTL: cfg.SessionTTL,
		LocalDir:   cfg.LocalStoreDir,
		Spec:       cfg.JanitorSpec,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("janitor init failed", "err", err)
		os.Exit(1)
	}

	handler := handlers.New(handlers.Options{
		Gemini:      gem,
		Engine:      engine,
		Sessions:    sessions,
		Coordinator: coordinator,
		Mailer:      mail,
		LocalDir:    cfg.LocalStoreDir,
		MaxGenerate: int64(cfg.MaxConcurrent),
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              cfg.WebAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		// Generation calls run tens of seconds; the write timeout must not
		// cut them off.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  90 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jan.Start()
	defer jan.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("kiosk started", "addr", cfg.WebAddr, "remote_storage", cfg.StorageConfigured())

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}
}

// buildStore picks the upload target: remote store with local fallback when
// credentials are present, local-only otherwise.
func buildStore(cfg config.Config, httpClient *http.Client, logger *slog.Logger) storage.ObjectStore {
	local := storage.NewLocal(storage.LocalOptions{
		Dir:        cfg.LocalStoreDir,
		PublicBase: cfg.PublicBaseURL + "/public",
	})

	if !cfg.StorageConfigured() {
		logger.Warn("remote storage not configured, using local store only")
		return local
	}

	remote, err := storage.NewHTTP(storage.HTTPOptions{
		BaseURL:    cfg.StorageURL,
		Bucket:     cfg.StorageBucket,
		Key:        cfg.StorageKey,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		logger.Warn("remote storage init failed, using local store only", "err", err)
		return local
	}

	return storage.NewFallback(remote, local, logger)
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
