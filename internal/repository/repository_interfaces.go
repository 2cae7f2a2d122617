// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opentranslation/translation-service/internal/domain/model"
)

// LocaleRepositoryInterface defines the interface for locale repository operations.
type LocaleRepositoryInterface interface {
	Create(ctx context.Context, code string) (*model.Locale, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Locale, error)
	FindByCode(ctx context.Context, code string) (*model.Locale, error)
	Resolve(ctx context.Context, code string) (*model.Locale, error)
	List(ctx context.Context) ([]model.Locale, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// TagRepositoryInterface defines the interface for tag repository operations.
type TagRepositoryInterface interface {
	Create(ctx context.Context, name string) (*model.Tag, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tag, error)
	Resolve(ctx context.Context, name string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
}

// TranslationRepositoryInterface defines the interface for translation repository operations.
type TranslationRepositoryInterface interface {
	Insert(ctx context.Context, t *model.Translation) error
	Update(ctx context.Context, t *model.Translation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Translation, error)
	FindByKeyAndLocale(ctx context.Context, key, localeCode string, offset, limit int64) ([]model.Translation, int64, error)
	FindByContent(ctx context.Context, content string, offset, limit int64) ([]model.Translation, int64, error)
	FindByTagID(ctx context.Context, tagID primitive.ObjectID, offset, limit int64) ([]model.Translation, int64, error)
	StreamAll(ctx context.Context, fn func(*model.Translation) error) error
	DeleteByLocaleID(ctx context.Context, localeID primitive.ObjectID) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
