// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/domain/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) IssueToken(ctx context.Context, clientCode string) (*dto.TokenResponse, error) {
	args := m.Called(ctx, clientCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

type MockTranslationService struct {
	mock.Mock
}

func (m *MockTranslationService) Create(ctx context.Context, req dto.TranslationRequest) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranslationResponse), args.Error(1)
}

func (m *MockTranslationService) Update(ctx context.Context, id string, req dto.TranslationRequest) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranslationResponse), args.Error(1)
}

func (m *MockTranslationService) Get(ctx context.Context, id string) (*dto.TranslationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TranslationResponse), args.Error(1)
}

func (m *MockTranslationService) SearchByKeyAndLocale(ctx context.Context, key, locale string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error) {
	args := m.Called(ctx, key, locale, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Page[dto.TranslationResponse]), args.Error(1)
}

func (m *MockTranslationService) SearchByContent(ctx context.Context, content string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error) {
	args := m.Called(ctx, content, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Page[dto.TranslationResponse]), args.Error(1)
}

func (m *MockTranslationService) SearchByTag(ctx context.Context, tag string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error) {
	args := m.Called(ctx, tag, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Page[dto.TranslationResponse]), args.Error(1)
}

func (m *MockTranslationService) Export(ctx context.Context) (map[string]map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]string), args.Error(1)
}

type MockLocaleService struct {
	mock.Mock
}

func (m *MockLocaleService) Create(ctx context.Context, code string) (*dto.LocaleResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LocaleResponse), args.Error(1)
}

func (m *MockLocaleService) Get(ctx context.Context, id string) (*dto.LocaleResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LocaleResponse), args.Error(1)
}

func (m *MockLocaleService) List(ctx context.Context) ([]dto.LocaleResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LocaleResponse), args.Error(1)
}

func (m *MockLocaleService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) Create(ctx context.Context, name string) (*dto.TagResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TagResponse), args.Error(1)
}

func (m *MockTagService) Get(ctx context.Context, id string) (*dto.TagResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TagResponse), args.Error(1)
}

func (m *MockTagService) List(ctx context.Context) ([]dto.TagResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TagResponse), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}
