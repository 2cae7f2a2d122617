// Package repository provides data access for locales.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opentranslation/translation-service/internal/domain/model"
)

// LocaleRepository provides methods for locale operations.
type LocaleRepository struct {
	collection *mongo.Collection
}

// NewLocaleRepository creates a new locale repository.
func NewLocaleRepository(db *MongoDB) *LocaleRepository {
	return &LocaleRepository{
		collection: db.Locales,
	}
}

// Create inserts a new locale. The unique index on code rejects duplicates;
// the raw driver error is returned for the service layer to classify.
func (r *LocaleRepository) Create(ctx context.Context, code string) (*model.Locale, error) {
	locale := model.Locale{
		ID:   primitive.NewObjectID(),
		Code: code,
	}

	if _, err := r.collection.InsertOne(ctx, locale); err != nil {
		return nil, err
	}

	return &locale, nil
}

// FindByID returns the locale with the given id, or (nil, nil) if absent.
func (r *LocaleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Locale, error) {
	var locale model.Locale
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&locale)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &locale, nil
}

// FindByCode returns the locale with the given code, or (nil, nil) if absent.
func (r *LocaleRepository) FindByCode(ctx context.Context, code string) (*model.Locale, error) {
	var locale model.Locale
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&locale)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &locale, nil
}

// Resolve returns the locale with the given code, creating it if absent.
// The upsert is atomic, so concurrent resolves of the same code converge on
// a single document.
func (r *LocaleRepository) Resolve(ctx context.Context, code string) (*model.Locale, error) {
	var locale model.Locale
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"code": code},
		bson.M{"$setOnInsert": bson.M{"code": code}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&locale)
	if err != nil {
		return nil, err
	}
	return &locale, nil
}

// List returns all locales sorted by code.
func (r *LocaleRepository) List(ctx context.Context) ([]model.Locale, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"code": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var locales []model.Locale
	if err := cursor.All(ctx, &locales); err != nil {
		return nil, err
	}

	return locales, nil
}

// Delete removes the locale with the given id.
// Returns the number of deleted documents (0 when the id is unknown).
func (r *LocaleRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
