package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/Simplici0/ebs-estimator/internal/config"
	"github.com/Simplici0/ebs-estimator/internal/contact"
	"github.com/Simplici0/ebs-estimator/internal/db"
	"github.com/Simplici0/ebs-estimator/internal/deliverylog"
	"github.com/Simplici0/ebs-estimator/internal/logging"
	"github.com/Simplici0/ebs-estimator/internal/mail"
	"github.com/Simplici0/ebs-estimator/internal/metrics"
	"github.com/Simplici0/ebs-estimator/internal/migrations"
	"github.com/Simplici0/ebs-estimator/internal/submission"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()
	for _, w := range cfg.Warnings {
		logger.Warn().Msg(w)
	}

	var deliveries *deliverylog.Store
	if cfg.DeliveryLogPath != "" {
		database, err := db.Open(cfg.DeliveryLogPath)
		if err != nil {
			return fmt.Errorf("open delivery log: %w", err)
		}
		defer database.Close()
		if err := migrations.Up(database); err != nil {
			return fmt.Errorf("migrate delivery log: %w", err)
		}
		version, err := migrations.Version(database)
		if err != nil {
			return fmt.Errorf("read delivery log schema version: %w", err)
		}
		deliveries = deliverylog.NewStore(database)
		logger.Info().Str("path", cfg.DeliveryLogPath).Int64("schema_version", version).Msg("delivery_log_enabled")
	}

	sender, err := newSender(cfg)
	if err != nil {
		return err
	}
	srv := newServer(cfg, logger, sender, deliveries)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newSender(cfg config.Config) (mail.Sender, error) {
	if cfg.ResendAPIKey == "" {
		return &mail.InMemory{}, nil
	}
	c, err := mail.NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL)
	if err != nil {
		return nil, fmt.Errorf("configure email sender: %w", err)
	}
	return c, nil
}

func newServer(cfg config.Config, logger zerolog.Logger, sender mail.Sender, deliveries *deliverylog.Store) *server {
	var (
		reg *prometheus.Registry
		m   *metrics.Metrics
	)
	if cfg.MetricsEnabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	dispatcher := &submission.Dispatcher{
		Sender:     sender,
		From:       cfg.EmailFrom,
		InternalTo: cfg.EmailTo,
		Metrics:    m,
		Logger:     logger,
	}
	// A typed nil store must not reach the interface field.
	if deliveries != nil {
		dispatcher.Deliveries = deliveries
	}

	return &server{
		log:          logger,
		dispatcher:   dispatcher,
		validator:    contact.NewValidator(),
		metrics:      m,
		registry:     reg,
		deliveries:   deliveries,
		opsToken:     cfg.OpsToken,
		liveness:     cfg.SendEmailLiveness,
		corsOrigins:  cfg.CORSAllowedOrigins,
		maxBodyBytes: cfg.MaxBodyBytes,
		rate:         cfg.RateLimit,
		now:          time.Now,
	}
}
