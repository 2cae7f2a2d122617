// Package app provides database initialization and setup.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/opentranslation/translation-service/config"
	"github.com/opentranslation/translation-service/internal/circuitbreaker"
	"github.com/opentranslation/translation-service/internal/repository"
	"github.com/opentranslation/translation-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                        *repository.MongoDB
	LocaleRepo                repository.LocaleRepositoryInterface
	TagRepo                   repository.TagRepositoryInterface
	TranslationRepo           repository.TranslationRepositoryInterface
	LoggingService            service.LoggingService
	TranslationCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker        *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates required repositories and
// services. The database is mandatory: every domain operation reads or writes
// it, so a failed connection aborts startup.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Circuit breakers protect the hot paths: translation reads/writes and
	// async log persistence.
	translationCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-translations",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	translationRepo := repository.NewTranslationRepository(db)
	translationRepoWithCB := repository.NewTranslationRepositoryWithCircuitBreaker(translationRepo, translationCB)

	return &DatabaseComponents{
		DB:                        db,
		LocaleRepo:                repository.NewLocaleRepository(db),
		TagRepo:                   repository.NewTagRepository(db),
		TranslationRepo:           translationRepoWithCB,
		LoggingService:            loggingService,
		TranslationCircuitBreaker: translationCB,
		LogsCircuitBreaker:        logsCB,
	}, nil
}
