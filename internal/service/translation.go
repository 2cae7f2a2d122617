package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/domain/model"
	"github.com/opentranslation/translation-service/internal/metrics"
	"github.com/opentranslation/translation-service/internal/repository"
)

var (
	// ErrTranslationNotFound is returned when a translation does not exist.
	ErrTranslationNotFound = errors.New("translation not found")
	// ErrDuplicateTranslation is returned when a (key, locale) pair already exists.
	ErrDuplicateTranslation = errors.New("translation already exists for key and locale")
)

// TranslationService provides translation operations.
//
// Creation requires the locale to already exist; tags are resolved on demand
// and shared across translations. The (key, locale) pair is unique.
type TranslationService interface {
	Create(ctx context.Context, req dto.TranslationRequest) (*dto.TranslationResponse, error)
	Update(ctx context.Context, id string, req dto.TranslationRequest) (*dto.TranslationResponse, error)
	Get(ctx context.Context, id string) (*dto.TranslationResponse, error)
	SearchByKeyAndLocale(ctx context.Context, key, locale string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error)
	SearchByContent(ctx context.Context, content string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error)
	SearchByTag(ctx context.Context, tag string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error)
	// Export returns every translation as {localeCode: {key: content}}.
	Export(ctx context.Context) (map[string]map[string]string, error)
}

// TranslationServiceImpl implements TranslationService.
type TranslationServiceImpl struct {
	translationRepo repository.TranslationRepositoryInterface
	localeRepo      repository.LocaleRepositoryInterface
	tagRepo         repository.TagRepositoryInterface
}

// NewTranslationService creates a new translation service.
func NewTranslationService(
	translationRepo repository.TranslationRepositoryInterface,
	localeRepo repository.LocaleRepositoryInterface,
	tagRepo repository.TagRepositoryInterface,
) TranslationService {
	return &TranslationServiceImpl{
		translationRepo: translationRepo,
		localeRepo:      localeRepo,
		tagRepo:         tagRepo,
	}
}

// Create stores a new translation. The locale must already exist; unknown
// locales fail before anything is persisted. Tags are resolved or created.
func (s *TranslationServiceImpl) Create(ctx context.Context, req dto.TranslationRequest) (*dto.TranslationResponse, error) {
	locale, err := s.localeRepo.FindByCode(ctx, req.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to find locale: %w", err)
	}
	if locale == nil {
		metrics.RecordTranslationOperation("create", "error")
		return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, req.Locale)
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	translation := &model.Translation{
		ID:         primitive.NewObjectID(),
		Key:        req.Key,
		LocaleID:   locale.ID,
		LocaleCode: locale.Code,
		Content:    req.Content,
		TagIDs:     tagIDs(tags),
		CreatedOn:  now,
		UpdatedOn:  now,
	}

	if err := s.translationRepo.Insert(ctx, translation); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			metrics.RecordTranslationOperation("create", "conflict")
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateTranslation, req.Key, req.Locale)
		}
		metrics.RecordTranslationOperation("create", "error")
		return nil, fmt.Errorf("failed to insert translation: %w", err)
	}

	metrics.RecordTranslationOperation("create", "success")
	return toTranslationResponse(translation, tagNames(tags)), nil
}

// Update replaces the content, key, locale, and tags of an existing
// translation. CreatedOn is preserved; only UpdatedOn is touched.
func (s *TranslationServiceImpl) Update(ctx context.Context, id string, req dto.TranslationRequest) (*dto.TranslationResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	existing, err := s.translationRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find translation: %w", err)
	}
	if existing == nil {
		metrics.RecordTranslationOperation("update", "error")
		return nil, fmt.Errorf("%w: %s", ErrTranslationNotFound, id)
	}

	locale, err := s.localeRepo.FindByCode(ctx, req.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to find locale: %w", err)
	}
	if locale == nil {
		metrics.RecordTranslationOperation("update", "error")
		return nil, fmt.Errorf("%w: %s", ErrLocaleNotFound, req.Locale)
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	existing.Key = req.Key
	existing.LocaleID = locale.ID
	existing.LocaleCode = locale.Code
	existing.Content = req.Content
	existing.TagIDs = tagIDs(tags)
	existing.Touch(time.Now())

	if err := s.translationRepo.Update(ctx, existing); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			metrics.RecordTranslationOperation("update", "conflict")
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateTranslation, req.Key, req.Locale)
		}
		metrics.RecordTranslationOperation("update", "error")
		return nil, fmt.Errorf("failed to update translation: %w", err)
	}

	metrics.RecordTranslationOperation("update", "success")
	return toTranslationResponse(existing, tagNames(tags)), nil
}

// Get returns the translation with the given id, with tag names resolved.
func (s *TranslationServiceImpl) Get(ctx context.Context, id string) (*dto.TranslationResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	translation, err := s.translationRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find translation: %w", err)
	}
	if translation == nil {
		return nil, fmt.Errorf("%w: %s", ErrTranslationNotFound, id)
	}

	names, err := s.namesForTagIDs(ctx, translation.TagIDs)
	if err != nil {
		return nil, err
	}

	return toTranslationResponse(translation, names), nil
}

// SearchByKeyAndLocale returns translations matching both the key and the locale code.
func (s *TranslationServiceImpl) SearchByKeyAndLocale(ctx context.Context, key, locale string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error) {
	page = page.Normalize()
	start := time.Now()

	translations, total, err := s.translationRepo.FindByKeyAndLocale(ctx, key, locale, page.Offset(), int64(page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to search by key and locale: %w", err)
	}

	metrics.RecordSearch("key_locale", time.Since(start))
	return s.toPage(ctx, translations, page, total)
}

// SearchByContent returns translations whose content contains the given
// substring, case-insensitively.
func (s *TranslationServiceImpl) SearchByContent(ctx context.Context, content string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error) {
	page = page.Normalize()
	start := time.Now()

	translations, total, err := s.translationRepo.FindByContent(ctx, content, page.Offset(), int64(page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to search by content: %w", err)
	}

	metrics.RecordSearch("content", time.Since(start))
	return s.toPage(ctx, translations, page, total)
}

// SearchByTag returns translations carrying the given tag name.
// An unknown tag yields an empty page, not an error.
func (s *TranslationServiceImpl) SearchByTag(ctx context.Context, tag string, page dto.PageRequest) (*dto.Page[dto.TranslationResponse], error) {
	page = page.Normalize()
	start := time.Now()

	tagDoc, err := s.tagRepo.FindByName(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	if tagDoc == nil {
		metrics.RecordSearch("tag", time.Since(start))
		return dto.NewPage[dto.TranslationResponse](nil, page, 0), nil
	}

	translations, total, err := s.translationRepo.FindByTagID(ctx, tagDoc.ID, page.Offset(), int64(page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to search by tag: %w", err)
	}

	metrics.RecordSearch("tag", time.Since(start))
	return s.toPage(ctx, translations, page, total)
}

// Export streams every translation into a nested {locale: {key: content}}
// map. Within one locale a later document wins if keys collide.
func (s *TranslationServiceImpl) Export(ctx context.Context) (map[string]map[string]string, error) {
	start := time.Now()
	result := make(map[string]map[string]string)
	records := 0

	err := s.translationRepo.StreamAll(ctx, func(t *model.Translation) error {
		byLocale, ok := result[t.LocaleCode]
		if !ok {
			byLocale = make(map[string]string)
			result[t.LocaleCode] = byLocale
		}
		byLocale[t.Key] = t.Content
		records++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export translations: %w", err)
	}

	metrics.RecordExport(time.Since(start), records)
	log.Debug().Int("records", records).Int("locales", len(result)).Msg("translations exported")
	return result, nil
}

// resolveTags finds or creates a tag per unique name, preserving request order.
func (s *TranslationServiceImpl) resolveTags(ctx context.Context, names []string) ([]model.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(names))
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := s.tagRepo.Resolve(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// namesForTagIDs resolves tag ids to names in one query.
func (s *TranslationServiceImpl) namesForTagIDs(ctx context.Context, ids []primitive.ObjectID) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	tags, err := s.tagRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}

	byID := make(map[primitive.ObjectID]string, len(tags))
	for _, tag := range tags {
		byID[tag.ID] = tag.Name
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// toPage maps translations to responses, resolving every tag name with a
// single batched lookup across the page.
func (s *TranslationServiceImpl) toPage(ctx context.Context, translations []model.Translation, page dto.PageRequest, total int64) (*dto.Page[dto.TranslationResponse], error) {
	var allIDs []primitive.ObjectID
	for i := range translations {
		allIDs = append(allIDs, translations[i].TagIDs...)
	}

	byID := make(map[primitive.ObjectID]string)
	if len(allIDs) > 0 {
		tags, err := s.tagRepo.FindByIDs(ctx, allIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tags: %w", err)
		}
		for _, tag := range tags {
			byID[tag.ID] = tag.Name
		}
	}

	responses := make([]dto.TranslationResponse, 0, len(translations))
	for i := range translations {
		t := &translations[i]
		names := make([]string, 0, len(t.TagIDs))
		for _, id := range t.TagIDs {
			if name, ok := byID[id]; ok {
				names = append(names, name)
			}
		}
		responses = append(responses, *toTranslationResponse(t, names))
	}

	return dto.NewPage(responses, page, total), nil
}

func tagIDs(tags []model.Tag) []primitive.ObjectID {
	if len(tags) == 0 {
		return nil
	}
	ids := make([]primitive.ObjectID, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func toTranslationResponse(t *model.Translation, tags []string) *dto.TranslationResponse {
	if tags == nil {
		tags = []string{}
	}
	return &dto.TranslationResponse{
		ID:        t.ID.Hex(),
		Key:       t.Key,
		Locale:    t.LocaleCode,
		Content:   t.Content,
		Tags:      tags,
		CreatedOn: t.CreatedOn,
		UpdatedOn: t.UpdatedOn,
	}
}
