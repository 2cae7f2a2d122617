// Package repository provides data access for tags.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opentranslation/translation-service/internal/domain/model"
)

// TagRepository provides methods for tag operations.
type TagRepository struct {
	collection *mongo.Collection
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(db *MongoDB) *TagRepository {
	return &TagRepository{
		collection: db.Tags,
	}
}

// Create inserts a new tag. The unique index on name rejects duplicates;
// the raw driver error is returned for the service layer to classify.
func (r *TagRepository) Create(ctx context.Context, name string) (*model.Tag, error) {
	tag := model.Tag{
		ID:   primitive.NewObjectID(),
		Name: name,
	}

	if _, err := r.collection.InsertOne(ctx, tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

// FindByID returns the tag with the given id, or (nil, nil) if absent.
func (r *TagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	var tag model.Tag
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByName returns the tag with the given name, or (nil, nil) if absent.
func (r *TagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&tag)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByIDs returns the tags matching the given ids. Missing ids are skipped.
func (r *TagRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var tags []model.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// Resolve returns the tag with the given name, creating it if absent.
// The upsert is atomic, so concurrent resolves of the same name never
// produce duplicate tags.
func (r *TagRepository) Resolve(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"name": name}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&tag)
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// List returns all tags sorted by name.
func (r *TagRepository) List(ctx context.Context) ([]model.Tag, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var tags []model.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}
