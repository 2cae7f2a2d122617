package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/domain/model"
	"github.com/opentranslation/translation-service/internal/repository"
)

var (
	// ErrTagNotFound is returned when a tag does not exist.
	ErrTagNotFound = errors.New("tag not found")
	// ErrDuplicateTag is returned when a tag name already exists.
	ErrDuplicateTag = errors.New("tag already exists")
)

// TagService provides tag operations.
type TagService interface {
	Create(ctx context.Context, name string) (*dto.TagResponse, error)
	Get(ctx context.Context, id string) (*dto.TagResponse, error)
	List(ctx context.Context) ([]dto.TagResponse, error)
}

// TagServiceImpl implements TagService.
type TagServiceImpl struct {
	tagRepo repository.TagRepositoryInterface
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo repository.TagRepositoryInterface) TagService {
	return &TagServiceImpl{tagRepo: tagRepo}
}

// Create registers a new tag name.
func (s *TagServiceImpl) Create(ctx context.Context, name string) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.Create(ctx, name)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTag, name)
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return toTagResponse(tag), nil
}

// Get returns the tag with the given id.
func (s *TagServiceImpl) Get(ctx context.Context, id string) (*dto.TagResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	tag, err := s.tagRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}
	if tag == nil {
		return nil, fmt.Errorf("%w: %s", ErrTagNotFound, id)
	}

	return toTagResponse(tag), nil
}

// List returns all tags.
func (s *TagServiceImpl) List(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	responses := make([]dto.TagResponse, 0, len(tags))
	for i := range tags {
		responses = append(responses, *toTagResponse(&tags[i]))
	}
	return responses, nil
}

func toTagResponse(tag *model.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		ID:   tag.ID.Hex(),
		Name: tag.Name,
	}
}
