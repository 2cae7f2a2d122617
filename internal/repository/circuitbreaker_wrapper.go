// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opentranslation/translation-service/internal/circuitbreaker"
	"github.com/opentranslation/translation-service/internal/domain/model"
)

// TranslationRepositoryWithCircuitBreaker wraps TranslationRepository with circuit breaker protection.
type TranslationRepositoryWithCircuitBreaker struct {
	repo           *TranslationRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTranslationRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTranslationRepositoryWithCircuitBreaker(repo *TranslationRepository, cb *circuitbreaker.CircuitBreaker) *TranslationRepositoryWithCircuitBreaker {
	return &TranslationRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a new translation with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) Insert(ctx context.Context, t *model.Translation) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, t)
	})
}

// Update replaces a stored translation with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) Update(ctx context.Context, t *model.Translation) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Update(ctx, t)
	})
}

// FindByID retrieves a translation with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Translation, error) {
	var result *model.Translation
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByKeyAndLocale searches by key and locale with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) FindByKeyAndLocale(ctx context.Context, key, localeCode string, offset, limit int64) ([]model.Translation, int64, error) {
	var (
		result []model.Translation
		total  int64
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, total, cbErr = r.repo.FindByKeyAndLocale(ctx, key, localeCode, offset, limit)
		return cbErr
	})
	return result, total, err
}

// FindByContent searches by content substring with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) FindByContent(ctx context.Context, content string, offset, limit int64) ([]model.Translation, int64, error) {
	var (
		result []model.Translation
		total  int64
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, total, cbErr = r.repo.FindByContent(ctx, content, offset, limit)
		return cbErr
	})
	return result, total, err
}

// FindByTagID searches by tag with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) FindByTagID(ctx context.Context, tagID primitive.ObjectID, offset, limit int64) ([]model.Translation, int64, error) {
	var (
		result []model.Translation
		total  int64
	)
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, total, cbErr = r.repo.FindByTagID(ctx, tagID, offset, limit)
		return cbErr
	})
	return result, total, err
}

// StreamAll iterates the whole collection with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) StreamAll(ctx context.Context, fn func(*model.Translation) error) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.StreamAll(ctx, fn)
	})
}

// DeleteByLocaleID removes a locale's translations with circuit breaker protection.
func (r *TranslationRepositoryWithCircuitBreaker) DeleteByLocaleID(ctx context.Context, localeID primitive.ObjectID) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.DeleteByLocaleID(ctx, localeID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TranslationRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
