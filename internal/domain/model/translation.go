// Package model defines the core domain entities for the translation service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Locale represents a language/region a translation can target, e.g. "en" or "fr_CA".
type Locale struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code string             `bson:"code" json:"code"`
}

// Tag is a free-form label shared across translations. Tags are created on
// demand and outlive the translations that reference them.
type Tag struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}

// Translation is a single translated string, unique per (key, locale).
// LocaleCode is denormalized from the locale document so that export and
// key+locale search never need a join.
type Translation struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Key        string               `bson:"translation_key" json:"key"`
	LocaleID   primitive.ObjectID   `bson:"locale_id" json:"locale_id"`
	LocaleCode string               `bson:"locale_code" json:"locale_code"`
	Content    string               `bson:"content" json:"content"`
	TagIDs     []primitive.ObjectID `bson:"tag_ids,omitempty" json:"tag_ids,omitempty"`
	CreatedOn  time.Time            `bson:"created_on" json:"created_on"`
	UpdatedOn  time.Time            `bson:"updated_on" json:"updated_on"`
}

// Touch updates the modification timestamp. CreatedOn is never changed after insert.
func (t *Translation) Touch(now time.Time) {
	t.UpdatedOn = now
}
