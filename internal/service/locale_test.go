//go:build !integration

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opentranslation/translation-service/internal/domain/model"
	"github.com/opentranslation/translation-service/internal/mocks"
	"github.com/opentranslation/translation-service/internal/service"
)

func newLocaleService() (service.LocaleService, *mocks.MockLocaleRepository, *mocks.MockTranslationRepository) {
	localeRepo := new(mocks.MockLocaleRepository)
	translationRepo := new(mocks.MockTranslationRepository)
	svc := service.NewLocaleService(localeRepo, translationRepo)
	return svc, localeRepo, translationRepo
}

func TestLocaleService_Create(t *testing.T) {
	t.Run("creates locale", func(t *testing.T) {
		svc, localeRepo, _ := newLocaleService()
		locale := &model.Locale{ID: primitive.NewObjectID(), Code: "fr"}
		localeRepo.On("Create", mock.Anything, "fr").Return(locale, nil)

		resp, err := svc.Create(context.Background(), "fr")

		require.NoError(t, err)
		assert.Equal(t, "fr", resp.Code)
		assert.Equal(t, locale.ID.Hex(), resp.ID)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		svc, localeRepo, _ := newLocaleService()
		localeRepo.On("Create", mock.Anything, "en").Return(nil, duplicateKeyErr())

		resp, err := svc.Create(context.Background(), "en")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, service.ErrDuplicateLocale)
		assert.Contains(t, err.Error(), "en")
	})
}

func TestLocaleService_Get(t *testing.T) {
	t.Run("unknown id carries the id in the message", func(t *testing.T) {
		svc, localeRepo, _ := newLocaleService()
		id := primitive.NewObjectID()
		localeRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		resp, err := svc.Get(context.Background(), id.Hex())

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, service.ErrLocaleNotFound)
		assert.Contains(t, err.Error(), id.Hex())
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		svc, _, _ := newLocaleService()

		resp, err := svc.Get(context.Background(), "zzz")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, service.ErrInvalidID)
	})
}

func TestLocaleService_Delete(t *testing.T) {
	t.Run("cascades to translations before removing the locale", func(t *testing.T) {
		svc, localeRepo, translationRepo := newLocaleService()
		locale := &model.Locale{ID: primitive.NewObjectID(), Code: "fr"}
		localeRepo.On("FindByID", mock.Anything, locale.ID).Return(locale, nil)
		translationRepo.On("DeleteByLocaleID", mock.Anything, locale.ID).Return(int64(3), nil)
		localeRepo.On("Delete", mock.Anything, locale.ID).Return(int64(1), nil)

		err := svc.Delete(context.Background(), locale.ID.Hex())

		require.NoError(t, err)
		translationRepo.AssertCalled(t, "DeleteByLocaleID", mock.Anything, locale.ID)
		localeRepo.AssertCalled(t, "Delete", mock.Anything, locale.ID)
	})

	t.Run("unknown locale deletes nothing", func(t *testing.T) {
		svc, localeRepo, translationRepo := newLocaleService()
		id := primitive.NewObjectID()
		localeRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		err := svc.Delete(context.Background(), id.Hex())

		assert.ErrorIs(t, err, service.ErrLocaleNotFound)
		translationRepo.AssertNotCalled(t, "DeleteByLocaleID", mock.Anything, mock.Anything)
		localeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestLocaleService_List(t *testing.T) {
	svc, localeRepo, _ := newLocaleService()
	locales := []model.Locale{
		{ID: primitive.NewObjectID(), Code: "en"},
		{ID: primitive.NewObjectID(), Code: "fr"},
	}
	localeRepo.On("List", mock.Anything).Return(locales, nil)

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "en", resp[0].Code)
	assert.Equal(t, "fr", resp[1].Code)
}
