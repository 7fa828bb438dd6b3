package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"lead-service/internal/application/interfaces"
	"lead-service/internal/application/services"
	"lead-service/internal/application/validation"
	"lead-service/internal/config"
	"lead-service/internal/delivery/handler"
	"lead-service/internal/infrastructure"
	"lead-service/internal/infrastructure/cache"
	"lead-service/internal/infrastructure/crm"
	"lead-service/internal/infrastructure/db/postgres"
	"lead-service/internal/infrastructure/messaging"
	"lead-service/internal/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log)

	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	store, closeStore, err := buildStore(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeStore()

	tokens, err := infrastructure.NewVerificationTokenService(cfg.Verification)
	if err != nil {
		return err
	}

	crmClient, err := crm.NewClient(cfg.CRM)
	if err != nil {
		return err
	}
	if cfg.CRM.ContactURL == "" || cfg.CRM.DealURL == "" {
		log.Warn("CONTACT_API_URL or DEAL_API_URL is not set, registrations will not reach the CRM")
	}

	publisher, closePublisher, err := buildPublisher(cfg.NATS)
	if err != nil {
		return err
	}
	defer closePublisher()

	validator := validation.New()
	media := infrastructure.NewLocalMediaStorage(cfg.Media)

	registrationService := services.NewRegistrationService(services.RegistrationServiceDeps{
		CourseRepo:               postgres.NewCourseRepository(db),
		RegistrationRepo:         postgres.NewRegistrationRepository(db),
		CRM:                      crmClient,
		Media:                    media,
		Tokens:                   tokens,
		Notifier:                 buildNotifier(cfg.Notify),
		Publisher:                publisher,
		Validator:                validator,
		RequirePhoneVerification: cfg.Verification.Required,
	})
	phoneVerificationService := services.NewPhoneVerificationService(
		infrastructure.NewOTPService(store, cfg.OTP),
		buildSMSSender(cfg),
		tokens,
		infrastructure.NewRateLimiter(cfg.OTP.RateLimitWindow, cfg.OTP.RateLimitBurst),
		validator,
	)
	contactService := services.NewContactService(postgres.NewContactRequestRepository(db), publisher, validator)
	careerService := services.NewCareerService(
		postgres.NewVacancyRepository(db),
		postgres.NewJobApplicationRepository(db),
		media,
		publisher,
		validator,
	)
	corporateService := services.NewCorporateService(
		postgres.NewCompanyRepository(db),
		postgres.NewCorporateRequestRepository(db),
		media,
		publisher,
		validator,
	)

	h := handler.NewHandler(registrationService, phoneVerificationService, contactService, careerService, corporateService,
		handler.HealthCheck{Name: "database", Check: func(ctx context.Context) error { return postgres.Ping(ctx, db) }},
		handler.HealthCheck{Name: "cache", Check: store.Ping},
	)
	e := handler.NewRouter(cfg.HTTP, h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      e,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"addr": srv.Addr, "env": cfg.Env}).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}

func buildStore(ctx context.Context, cfg config.RedisConfig) (cache.Store, func(), error) {
	if cfg.Backend == "memory" {
		log.Warn("using in-process OTP store, codes are not shared between instances")
		return cache.NewMemoryStore(), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	store := cache.NewRedisStore(client)
	return store, func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("closing redis failed")
		}
	}, nil
}

func buildPublisher(cfg config.NATSConfig) (interfaces.EventPublisher, func(), error) {
	if cfg.URL == "" {
		return messaging.NoopPublisher{}, func() {}, nil
	}

	publisher, err := messaging.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	return publisher, publisher.Close, nil
}

func buildNotifier(cfg config.NotifyConfig) interfaces.Notifier {
	if cfg.SendGridAPIKey == "" || cfg.ToEmail == "" {
		return infrastructure.LogNotifier{}
	}
	return infrastructure.NewSendGridNotifier(cfg)
}

// buildSMSSender falls back to logging codes outside production; config.Load
// already refuses a production config without a gateway.
func buildSMSSender(cfg *config.Config) interfaces.SMSSender {
	if cfg.SMS.APIURL == "" {
		log.Warn("SMS_API_URL is not set, OTP codes will be written to the log")
		return infrastructure.LogSMSSender{}
	}
	return infrastructure.NewSMSService(cfg.SMS)
}
