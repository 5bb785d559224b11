package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventticketing/config"
	_ "eventticketing/docs"
	"eventticketing/internal/adapters/auth"
	"eventticketing/internal/adapters/email"
	"eventticketing/internal/adapters/events"
	"eventticketing/internal/adapters/ratelimit"
	deliveryhttp "eventticketing/internal/delivery/http"
	"eventticketing/internal/delivery/http/controllers"
	"eventticketing/internal/domain"
	"eventticketing/internal/repository/postgres"
	"eventticketing/internal/services"

	"github.com/spf13/pflag"
)

// @title Event Ticketing API
// @version 1.0
// @description Events, private event access and invitations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flagSet := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	migrate := flagSet.Bool("migrate", false, "apply the database schema before serving")
	migrateOnly := flagSet.Bool("migrate-only", false, "apply the database schema and exit")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	if *migrate || *migrateOnly {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("database schema applied")
		if *migrateOnly {
			return nil
		}
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
		MailerSendAPIKey: cfg.Mail.MailerSendAPIKey,
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	// Delivery and domain notifications go through NATS when configured,
	// otherwise through the in-process worker pool.
	var (
		queue     domain.DeliveryQueue
		publisher domain.EventPublisher
		stopQueue func(context.Context) error
	)
	if cfg.NATSUrl != "" {
		bus, err := events.Connect(cfg.NATSUrl, logger)
		if err != nil {
			return err
		}
		defer bus.Close()
		natsQueue := events.NewDeliveryQueue(bus, emailService, cfg.Delivery.Timeout)
		if err := natsQueue.Start(); err != nil {
			return err
		}
		queue, publisher = natsQueue, bus
		stopQueue = func(context.Context) error { return natsQueue.Stop() }
		logger.Info("using nats delivery queue", "url", cfg.NATSUrl)
	} else {
		localQueue := services.NewDeliveryQueue(emailService, cfg.Delivery.Workers, cfg.Delivery.Buffer, cfg.Delivery.Timeout, logger)
		localQueue.Start(ctx)
		queue, publisher = localQueue, events.NewNoopPublisher()
		stopQueue = localQueue.Stop
	}

	limiter := ratelimit.NewNoop()
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = ratelimit.NewFixedWindow(client, cfg.Gate.RateLimit, cfg.Gate.RateWindow)
	}

	tokens := auth.NewInviteTokenIssuer()
	eventRepo := postgres.NewEventRepository(db, tokens)
	inviteeRepo := postgres.NewInviteeRepository(db, tokens)
	registrationRepo := postgres.NewRegistrationRepository(db)

	classifier := services.NewAccessClassifier(inviteeRepo, publisher, logger)
	invitationService := services.NewInvitationService(eventRepo, inviteeRepo, emailService, queue, publisher, logger, services.InvitationConfig{
		BaseURL:           cfg.BaseURL,
		ResendConcurrency: cfg.Delivery.ResendConcurrency,
		ResendTimeout:     cfg.Delivery.ResendTimeout,
		Timeout:           cfg.RequestTimeout,
	})
	eventService := services.NewEventService(eventRepo, invitationService, classifier, logger, cfg.RequestTimeout)
	attendeeService := services.NewAttendeeService(eventRepo, registrationRepo, classifier, cfg.RequestTimeout)

	handler := deliveryhttp.NewHandler(deliveryhttp.RouterDeps{
		Logger:         logger,
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
		Limiter:        limiter,
		TrustedProxies: cfg.Gate.TrustedProxies,
		Events:         controllers.NewEventController(logger, eventService),
		Invitees:       controllers.NewInviteeController(logger, invitationService),
		Attendees:      controllers.NewAttendeeController(logger, attendeeService),
	}, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "err", err)
	}
	if err := stopQueue(shutdownCtx); err != nil {
		logger.Error("delivery queue shutdown", "err", err)
	}
	return nil
}
