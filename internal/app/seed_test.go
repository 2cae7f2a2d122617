//go:build !integration

package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opentranslation/translation-service/internal/domain/model"
	"github.com/opentranslation/translation-service/internal/mocks"
)

func TestSeedDefaults(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockLocaleRepository, *mocks.MockTagRepository)
		wantError  bool
	}{
		{
			name: "seeds all default locales and tags",
			setupMocks: func(locales *mocks.MockLocaleRepository, tags *mocks.MockTagRepository) {
				for _, code := range defaultLocales {
					locales.On("Resolve", mock.Anything, code).
						Return(&model.Locale{ID: primitive.NewObjectID(), Code: code}, nil).Once()
				}
				for _, name := range defaultTags {
					tags.On("Resolve", mock.Anything, name).
						Return(&model.Tag{ID: primitive.NewObjectID(), Name: name}, nil).Once()
				}
			},
			wantError: false,
		},
		{
			name: "locale resolve error aborts seeding",
			setupMocks: func(locales *mocks.MockLocaleRepository, tags *mocks.MockTagRepository) {
				locales.On("Resolve", mock.Anything, "en").
					Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
		{
			name: "tag resolve error aborts seeding",
			setupMocks: func(locales *mocks.MockLocaleRepository, tags *mocks.MockTagRepository) {
				for _, code := range defaultLocales {
					locales.On("Resolve", mock.Anything, code).
						Return(&model.Locale{ID: primitive.NewObjectID(), Code: code}, nil).Once()
				}
				tags.On("Resolve", mock.Anything, "general").
					Return(nil, errors.New("database error")).Once()
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			localeRepo := new(mocks.MockLocaleRepository)
			tagRepo := new(mocks.MockTagRepository)
			localeRepo.Test(t)
			tagRepo.Test(t)
			tt.setupMocks(localeRepo, tagRepo)

			err := seedDefaults(localeRepo, tagRepo)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			localeRepo.AssertExpectations(t)
			tagRepo.AssertExpectations(t)
		})
	}
}
