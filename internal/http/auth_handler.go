package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/i18n"
	"github.com/opentranslation/translation-service/internal/middleware"
	"github.com/opentranslation/translation-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueToken handles POST /api/auth/token requests.
//
// The client code is taken from the clientCode query parameter, falling
// back to the JSON body for clients that prefer to POST it.
//
// @Summary      Issue JWT token
// @Description  Issues a JWT for a known client code. The code may be passed as the clientCode query parameter or in the JSON body.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        clientCode query string false "Client code"
// @Param        request body dto.TokenRequest false "Client code (alternative to query parameter)"
// @Success      200 {object} dto.TokenResponse "Issued token"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing client code"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - unknown client code"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)
	locale := i18n.GetLocale(c)

	req := dto.TokenRequest{ClientCode: c.Query("clientCode")}
	if req.ClientCode == "" && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	resp, err := h.authService.IssueToken(c.Request.Context(), req.ClientCode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidClientCode) {
			if loggingService, exists := c.Get("logging_service"); exists {
				if ls, ok := loggingService.(service.LoggingService); ok {
					middleware.AuditLogError(ls, c, "token_rejected", "Token request for unknown client code", err, map[string]interface{}{
						"client_code": req.ClientCode,
					})
				}
			}
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidClientCode, locale)
			builder.ErrorWithMessage(http.StatusUnauthorized, message, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set(middleware.ClientCodeKey, req.ClientCode)

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "token_issued", "Token issued", map[string]interface{}{
				"client_code": req.ClientCode,
			})
		}
	}

	builder.SuccessOK(resp)
}
