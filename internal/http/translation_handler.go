package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/i18n"
	"github.com/opentranslation/translation-service/internal/middleware"
	"github.com/opentranslation/translation-service/internal/service"
)

// TranslationHandler provides HTTP handlers for translation routes.
type TranslationHandler struct {
	translationService service.TranslationService
}

// NewTranslationHandler creates a new translation handler.
func NewTranslationHandler(translationService service.TranslationService) *TranslationHandler {
	return &TranslationHandler{
		translationService: translationService,
	}
}

// Create handles POST /api/translations requests.
//
// @Summary      Create translation
// @Description  Creates a translation string for an existing locale. Unknown tags are created on demand. The (key, locale) pair must be unique.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        request body dto.TranslationRequest true "Translation to create"
// @Success      201 {object} dto.SuccessResponse{data=dto.TranslationResponse} "Created translation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown locale"
// @Failure      409 {object} dto.ErrorResponse "Conflict - translation already exists for this key and locale"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations [post]
func (h *TranslationHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	resp, err := h.translationService.Create(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "translation_created", "Translation created", map[string]interface{}{
				"key":    req.Key,
				"locale": req.Locale,
			})
		}
	}

	builder.SuccessCreated(resp)
}

// Update handles PUT /api/translations/:id requests.
//
// @Summary      Update translation
// @Description  Replaces the key, locale, content and tags of an existing translation. Moving it onto an occupied (key, locale) pair is a conflict.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        id path string true "Translation ID"
// @Param        request body dto.TranslationRequest true "New translation values"
// @Success      200 {object} dto.SuccessResponse{data=dto.TranslationResponse} "Updated translation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown translation or locale"
// @Failure      409 {object} dto.ErrorResponse "Conflict - key and locale already taken"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations/{id} [put]
func (h *TranslationHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	var req dto.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	resp, err := h.translationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "translation_updated", "Translation updated", map[string]interface{}{
				"id":     id,
				"key":    req.Key,
				"locale": req.Locale,
			})
		}
	}

	builder.SuccessOK(resp)
}

// Get handles GET /api/translations/:id requests.
//
// @Summary      Get translation
// @Description  Returns a single translation by its ID, with tag names resolved.
// @Tags         Translations
// @Produce      json
// @Param        id path string true "Translation ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.TranslationResponse} "Translation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations/{id} [get]
func (h *TranslationHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.translationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	builder.SuccessOK(resp)
}

// Search handles GET /api/translations/search requests.
//
// Exactly one filter is applied per request. When several are present
// the key+locale pair wins, then content, then tag.
//
// @Summary      Search translations
// @Description  Searches translations by key and locale, by content substring, or by tag. Filters are applied in that priority order; at least one must be present. Results are paginated.
// @Tags         Translations
// @Produce      json
// @Param        key query string false "Translation key (used together with locale)"
// @Param        locale query string false "Locale code (used together with key)"
// @Param        content query string false "Content substring, case-insensitive"
// @Param        tag query string false "Tag name"
// @Param        page query int false "Page number, starting at 0"
// @Param        size query int false "Page size, at most 500" default(50)
// @Success      200 {object} dto.SuccessResponse{data=dto.Page[dto.TranslationResponse]} "Matching translations"
// @Failure      400 {object} dto.ErrorResponse "Bad request - no usable filter"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations/search [get]
func (h *TranslationHandler) Search(c *gin.Context) {
	builder := NewResponseBuilder(c)

	page := parsePageRequest(c)
	key := c.Query("key")
	locale := c.Query("locale")
	content := c.Query("content")
	tag := c.Query("tag")

	var (
		result *dto.Page[dto.TranslationResponse]
		err    error
	)

	switch {
	case key != "" && locale != "":
		result, err = h.translationService.SearchByKeyAndLocale(c.Request.Context(), key, locale, page)
	case content != "":
		result, err = h.translationService.SearchByContent(c.Request.Context(), content, page)
	case tag != "":
		result, err = h.translationService.SearchByTag(c.Request.Context(), tag, page)
	default:
		message := i18n.GetTranslator().Translate(i18n.ErrKeyMissingFilter, i18n.GetLocale(c))
		builder.ErrorWithMessage(http.StatusBadRequest, message, errors.New("no search filter provided"))
		return
	}

	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	builder.SuccessOK(result)
}

// Export handles GET /api/translations/export requests.
//
// @Summary      Export translations
// @Description  Returns every translation grouped by locale, as {locale: {key: content}}. Intended for bulk consumption by client applications.
// @Tags         Translations
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Translations grouped by locale"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations/export [get]
func (h *TranslationHandler) Export(c *gin.Context) {
	builder := NewResponseBuilder(c)

	result, err := h.translationService.Export(c.Request.Context())
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "export", "Translations exported", map[string]interface{}{
				"locales": len(result),
			})
		}
	}

	builder.SuccessOK(result)
}

// renderError maps service errors to HTTP responses.
func (h *TranslationHandler) renderError(c *gin.Context, builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrTranslationNotFound),
		errors.Is(err, service.ErrLocaleNotFound):
		builder.ErrorWithMessage(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrDuplicateTranslation):
		builder.ErrorWithMessage(http.StatusConflict, err.Error(), err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// parsePageRequest reads page and size query parameters, falling back to
// defaults on absent or malformed values.
func parsePageRequest(c *gin.Context) dto.PageRequest {
	page := dto.DefaultPage
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	size := dto.DefaultSize
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			size = n
		}
	}
	return dto.PageRequest{Page: page, Size: size}.Normalize()
}
