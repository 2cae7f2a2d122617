// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "time"

// TranslationRequest represents the JSON request body for creating or
// updating a translation.
//
// The locale must already exist; tags are created on demand.
//
// @Description Request to create or update a translation string
// @Example {"key": "welcome.message", "locale": "en", "content": "Welcome", "tags": ["ui", "general"]}
type TranslationRequest struct {
	// Key is the translation key, e.g. "welcome.message".
	Key string `json:"key" binding:"required" example:"welcome.message"`
	// Locale is the code of an existing locale, e.g. "en".
	Locale string `json:"locale" binding:"required" example:"en"`
	// Content is the translated text.
	Content string `json:"content" binding:"required" example:"Welcome"`
	// Tags is an optional list of tag names. Unknown tags are created.
	Tags []string `json:"tags,omitempty" example:"ui,general"`
} // @name TranslationRequest

// TranslationResponse represents a translation in API responses,
// with tag names resolved.
//
// @Description Translation with resolved tag names
type TranslationResponse struct {
	ID        string    `json:"id" example:"65b1f0c2e4b0a53f6c8d9e01"`
	Key       string    `json:"key" example:"welcome.message"`
	Locale    string    `json:"locale" example:"en"`
	Content   string    `json:"content" example:"Welcome"`
	Tags      []string  `json:"tags" example:"ui,general"`
	CreatedOn time.Time `json:"created_on" example:"2026-01-28T10:00:00Z"`
	UpdatedOn time.Time `json:"updated_on" example:"2026-01-28T10:00:00Z"`
} // @name TranslationResponse

// LocaleResponse represents a locale in API responses.
type LocaleResponse struct {
	ID   string `json:"id" example:"65b1f0c2e4b0a53f6c8d9e02"`
	Code string `json:"code" example:"en"`
} // @name LocaleResponse

// TagResponse represents a tag in API responses.
type TagResponse struct {
	ID   string `json:"id" example:"65b1f0c2e4b0a53f6c8d9e03"`
	Name string `json:"name" example:"ui"`
} // @name TagResponse

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *TranslationRequest) Validate() error {
	if r.Key == "" {
		return &ValidationError{Field: "key", Message: "key is required"}
	}
	if r.Locale == "" {
		return &ValidationError{Field: "locale", Message: "locale is required"}
	}
	if r.Content == "" {
		return &ValidationError{Field: "content", Message: "content is required"}
	}
	return nil
}

// Pagination defaults, matching the search endpoint contract.
const (
	DefaultPage = 0
	DefaultSize = 50
	MaxSize     = 500
)

// PageRequest carries pagination parameters for search queries.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the page request to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Offset returns the number of documents to skip for this page.
func (p PageRequest) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

// Page is a paginated result set.
//
// @Description Paginated result set
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page" example:"0"`
	Size          int   `json:"size" example:"50"`
	TotalElements int64 `json:"total_elements" example:"3"`
	TotalPages    int   `json:"total_pages" example:"1"`
} // @name Page

// NewPage assembles a Page from content and the total element count.
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return &Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
