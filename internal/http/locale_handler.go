package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opentranslation/translation-service/internal/i18n"
	"github.com/opentranslation/translation-service/internal/middleware"
	"github.com/opentranslation/translation-service/internal/service"
)

// LocaleHandler provides HTTP handlers for locale routes.
type LocaleHandler struct {
	localeService service.LocaleService
}

// NewLocaleHandler creates a new locale handler.
func NewLocaleHandler(localeService service.LocaleService) *LocaleHandler {
	return &LocaleHandler{
		localeService: localeService,
	}
}

// Create handles POST /api/locales requests.
//
// @Summary      Create locale
// @Description  Registers a new locale code. Codes are unique.
// @Tags         Locales
// @Produce      json
// @Param        code query string true "Locale code, e.g. en or pt-BR"
// @Success      201 {object} dto.SuccessResponse{data=dto.LocaleResponse} "Created locale"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing code"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      409 {object} dto.ErrorResponse "Conflict - locale already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/locales [post]
func (h *LocaleHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	code := c.Query("code")
	if code == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "code: locale code is required", errors.New("missing code query parameter"))
		return
	}

	resp, err := h.localeService.Create(c.Request.Context(), code)
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "locale_created", "Locale created", map[string]interface{}{
				"code": code,
			})
		}
	}

	builder.SuccessCreated(resp)
}

// Get handles GET /api/locales/:id requests.
//
// @Summary      Get locale
// @Description  Returns a single locale by its ID.
// @Tags         Locales
// @Produce      json
// @Param        id path string true "Locale ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.LocaleResponse} "Locale"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/locales/{id} [get]
func (h *LocaleHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.localeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	builder.SuccessOK(resp)
}

// List handles GET /api/locales requests.
//
// @Summary      List locales
// @Description  Returns all registered locales, sorted by code.
// @Tags         Locales
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.LocaleResponse} "Locales"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/locales [get]
func (h *LocaleHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.localeService.List(c.Request.Context())
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	builder.SuccessOK(resp)
}

// Delete handles DELETE /api/locales/:id requests.
//
// @Summary      Delete locale
// @Description  Removes a locale and every translation bound to it.
// @Tags         Locales
// @Produce      json
// @Param        id path string true "Locale ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/locales/{id} [delete]
func (h *LocaleHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := c.Param("id")

	if err := h.localeService.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, builder, err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "locale_deleted", "Locale deleted with its translations", map[string]interface{}{
				"id": id,
			})
		}
	}

	builder.SuccessOK(map[string]string{"message": "Locale deleted"})
}

// renderError maps service errors to HTTP responses.
func (h *LocaleHandler) renderError(c *gin.Context, builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrLocaleNotFound):
		builder.ErrorWithMessage(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrDuplicateLocale):
		builder.ErrorWithMessage(http.StatusConflict, err.Error(), err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
