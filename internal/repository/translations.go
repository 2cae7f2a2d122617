// Package repository provides data access for translations.
package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opentranslation/translation-service/internal/domain/model"
)

// TranslationRepository provides methods for translation operations.
type TranslationRepository struct {
	collection *mongo.Collection
}

// NewTranslationRepository creates a new translation repository.
func NewTranslationRepository(db *MongoDB) *TranslationRepository {
	return &TranslationRepository{
		collection: db.Translations,
	}
}

// Insert stores a new translation. The unique compound index on
// (translation_key, locale_id) rejects duplicates; the raw driver error is
// returned for the service layer to classify.
func (r *TranslationRepository) Insert(ctx context.Context, t *model.Translation) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, t)
	return err
}

// Update replaces the stored translation with the given document.
func (r *TranslationRepository) Update(ctx context.Context, t *model.Translation) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	return err
}

// FindByID returns the translation with the given id, or (nil, nil) if absent.
func (r *TranslationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Translation, error) {
	var t model.Translation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindByKeyAndLocale returns translations matching both the key and the
// locale code, with the total match count for pagination.
func (r *TranslationRepository) FindByKeyAndLocale(ctx context.Context, key, localeCode string, offset, limit int64) ([]model.Translation, int64, error) {
	filter := bson.M{"translation_key": key, "locale_code": localeCode}
	return r.findPage(ctx, filter, offset, limit)
}

// FindByContent returns translations whose content contains the given
// substring, case-insensitively, with the total match count.
func (r *TranslationRepository) FindByContent(ctx context.Context, content string, offset, limit int64) ([]model.Translation, int64, error) {
	filter := bson.M{"content": bson.M{"$regex": regexp.QuoteMeta(content), "$options": "i"}}
	return r.findPage(ctx, filter, offset, limit)
}

// FindByTagID returns translations carrying the given tag, with the total
// match count.
func (r *TranslationRepository) FindByTagID(ctx context.Context, tagID primitive.ObjectID, offset, limit int64) ([]model.Translation, int64, error) {
	filter := bson.M{"tag_ids": tagID}
	return r.findPage(ctx, filter, offset, limit)
}

func (r *TranslationRepository) findPage(ctx context.Context, filter bson.M, offset, limit int64) ([]model.Translation, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "translation_key", Value: 1}, {Key: "locale_code", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var translations []model.Translation
	if err := cursor.All(ctx, &translations); err != nil {
		return nil, 0, err
	}

	return translations, total, nil
}

// StreamAll iterates the whole collection, calling fn for each translation.
// Used by export to avoid loading every document into memory at once.
func (r *TranslationRepository) StreamAll(ctx context.Context, fn func(*model.Translation) error) error {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	for cursor.Next(ctx) {
		var t model.Translation
		if err := cursor.Decode(&t); err != nil {
			return err
		}
		if err := fn(&t); err != nil {
			return err
		}
	}

	return cursor.Err()
}

// DeleteByLocaleID removes every translation for the given locale.
// Used by the locale cascade delete. Returns the number of deleted documents.
func (r *TranslationRepository) DeleteByLocaleID(ctx context.Context, localeID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"locale_id": localeID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
