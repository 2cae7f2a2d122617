// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/opentranslation/translation-service/internal/domain/model"
)

type MockLocaleRepository struct {
	mock.Mock
}

func (m *MockLocaleRepository) Create(ctx context.Context, code string) (*model.Locale, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Locale), args.Error(1)
}

func (m *MockLocaleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Locale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Locale), args.Error(1)
}

func (m *MockLocaleRepository) FindByCode(ctx context.Context, code string) (*model.Locale, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Locale), args.Error(1)
}

func (m *MockLocaleRepository) Resolve(ctx context.Context, code string) (*model.Locale, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Locale), args.Error(1)
}

func (m *MockLocaleRepository) List(ctx context.Context) ([]model.Locale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Locale), args.Error(1)
}

func (m *MockLocaleRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockTagRepository) Resolve(ctx context.Context, name string) (*model.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tag), args.Error(1)
}

type MockTranslationRepository struct {
	mock.Mock
}

func (m *MockTranslationRepository) Insert(ctx context.Context, t *model.Translation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranslationRepository) Update(ctx context.Context, t *model.Translation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTranslationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Translation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Translation), args.Error(1)
}

func (m *MockTranslationRepository) FindByKeyAndLocale(ctx context.Context, key, localeCode string, offset, limit int64) ([]model.Translation, int64, error) {
	args := m.Called(ctx, key, localeCode, offset, limit)
	var result []model.Translation
	if args.Get(0) != nil {
		result = args.Get(0).([]model.Translation)
	}
	total, _ := args.Get(1).(int64)
	return result, total, args.Error(2)
}

func (m *MockTranslationRepository) FindByContent(ctx context.Context, content string, offset, limit int64) ([]model.Translation, int64, error) {
	args := m.Called(ctx, content, offset, limit)
	var result []model.Translation
	if args.Get(0) != nil {
		result = args.Get(0).([]model.Translation)
	}
	total, _ := args.Get(1).(int64)
	return result, total, args.Error(2)
}

func (m *MockTranslationRepository) FindByTagID(ctx context.Context, tagID primitive.ObjectID, offset, limit int64) ([]model.Translation, int64, error) {
	args := m.Called(ctx, tagID, offset, limit)
	var result []model.Translation
	if args.Get(0) != nil {
		result = args.Get(0).([]model.Translation)
	}
	total, _ := args.Get(1).(int64)
	return result, total, args.Error(2)
}

func (m *MockTranslationRepository) StreamAll(ctx context.Context, fn func(*model.Translation) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockTranslationRepository) DeleteByLocaleID(ctx context.Context, localeID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, localeID)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
