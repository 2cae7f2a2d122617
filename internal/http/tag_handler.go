package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opentranslation/translation-service/internal/i18n"
	"github.com/opentranslation/translation-service/internal/service"
)

// TagHandler provides HTTP handlers for tag routes.
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// Create handles POST /api/tags requests.
//
// @Summary      Create tag
// @Description  Registers a new tag name. Names are unique.
// @Tags         Tags
// @Produce      json
// @Param        name query string true "Tag name, e.g. ui"
// @Success      201 {object} dto.SuccessResponse{data=dto.TagResponse} "Created tag"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing name"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      409 {object} dto.ErrorResponse "Conflict - tag already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	name := c.Query("name")
	if name == "" {
		builder.ErrorWithMessage(http.StatusBadRequest, "name: tag name is required", errors.New("missing name query parameter"))
		return
	}

	resp, err := h.tagService.Create(c.Request.Context(), name)
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	builder.SuccessCreated(resp)
}

// Get handles GET /api/tags/:id requests.
//
// @Summary      Get tag
// @Description  Returns a single tag by its ID.
// @Tags         Tags
// @Produce      json
// @Param        id path string true "Tag ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.TagResponse} "Tag"
// @Failure      400 {object} dto.ErrorResponse "Bad request - malformed ID"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.tagService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	builder.SuccessOK(resp)
}

// List handles GET /api/tags requests.
//
// @Summary      List tags
// @Description  Returns all registered tags, sorted by name.
// @Tags         Tags
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.TagResponse} "Tags"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.tagService.List(c.Request.Context())
	if err != nil {
		h.renderError(c, builder, err)
		return
	}

	builder.SuccessOK(resp)
}

// renderError maps service errors to HTTP responses.
func (h *TagHandler) renderError(c *gin.Context, builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrTagNotFound):
		builder.ErrorWithMessage(http.StatusNotFound, err.Error(), err)
	case errors.Is(err, service.ErrDuplicateTag):
		builder.ErrorWithMessage(http.StatusConflict, err.Error(), err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
