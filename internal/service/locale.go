package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/domain/model"
	"github.com/opentranslation/translation-service/internal/repository"
)

var (
	// ErrLocaleNotFound is returned when a locale does not exist.
	ErrLocaleNotFound = errors.New("locale not found")
	// ErrDuplicateLocale is returned when a locale code already exists.
	ErrDuplicateLocale = errors.New("locale already exists")
	// ErrInvalidID is returned when an identifier is not a valid object id.
	ErrInvalidID = errors.New("invalid id")
)

// LocaleService provides locale operations.
type LocaleService interface {
	Create(ctx context.Context, code string) (*dto.LocaleResponse, error)
	Get(ctx context.Context, id string) (*dto.LocaleResponse, error)
	List(ctx context.Context) ([]dto.LocaleResponse, error)
	// Delete removes a locale and cascades to its translations.
	Delete(ctx context.Context, id string) error
}

// LocaleServiceImpl implements LocaleService.
type LocaleServiceImpl struct {
	localeRepo      repository.LocaleRepositoryInterface
	translationRepo repository.TranslationRepositoryInterface
}

// NewLocaleService creates a new locale service.
func NewLocaleService(localeRepo repository.LocaleRepositoryInterface, translationRepo repository.TranslationRepositoryInterface) LocaleService {
	return &LocaleServiceImpl{
		localeRepo:      localeRepo,
		translationRepo: translationRepo,
	}
}

// Create registers a new locale code.
func (s *LocaleServiceImpl) Create(ctx context.Context, code string) (*dto.LocaleResponse, error) {
	locale, err := s.localeRepo.Create(ctx, code)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocale, code)
		}
		return nil, fmt.Errorf("failed to create locale: %w", err)
	}

	return toLocaleResponse(locale), nil
}

// Get returns the locale with the given id.
func (s *LocaleServiceImpl) Get(ctx context.Context, id string) (*dto.LocaleResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	locale, err := s.localeRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find locale: %w", err)
	}
	if locale == nil {
		return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, id)
	}

	return toLocaleResponse(locale), nil
}

// List returns all locales.
func (s *LocaleServiceImpl) List(ctx context.Context) ([]dto.LocaleResponse, error) {
	locales, err := s.localeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	responses := make([]dto.LocaleResponse, 0, len(locales))
	for i := range locales {
		responses = append(responses, *toLocaleResponse(&locales[i]))
	}
	return responses, nil
}

// Delete removes a locale and every translation stored for it.
// Translations go first so a failure never leaves them orphaned without
// their locale.
func (s *LocaleServiceImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	locale, err := s.localeRepo.FindByID(ctx, objectID)
	if err != nil {
		return fmt.Errorf("failed to find locale: %w", err)
	}
	if locale == nil {
		return fmt.Errorf("%w: %s", ErrLocaleNotFound, id)
	}

	deleted, err := s.translationRepo.DeleteByLocaleID(ctx, objectID)
	if err != nil {
		return fmt.Errorf("failed to delete translations for locale: %w", err)
	}
	if deleted > 0 {
		log.Info().Str("locale", locale.Code).Int64("translations", deleted).Msg("cascade deleted translations")
	}

	if _, err := s.localeRepo.Delete(ctx, objectID); err != nil {
		return fmt.Errorf("failed to delete locale: %w", err)
	}

	return nil
}

func toLocaleResponse(locale *model.Locale) *dto.LocaleResponse {
	return &dto.LocaleResponse{
		ID:   locale.ID.Hex(),
		Code: locale.Code,
	}
}
