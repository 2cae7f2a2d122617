package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/mocks"
	"github.com/opentranslation/translation-service/internal/service"
)

func newLocaleTestRouter(svc *mocks.MockLocaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewLocaleHandler(svc)
	router.POST("/locales", handler.Create)
	router.GET("/locales", handler.List)
	router.GET("/locales/:id", handler.Get)
	router.DELETE("/locales/:id", handler.Delete)
	return router
}

func TestLocaleHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		setupMocks     func(*mocks.MockLocaleService)
		expectedStatus int
	}{
		{
			name: "successful creation",
			url:  "/locales?code=fr",
			setupMocks: func(svc *mocks.MockLocaleService) {
				svc.On("Create", mock.Anything, "fr").
					Return(&dto.LocaleResponse{ID: "65b1f0c2e4b0a53f6c8d9e02", Code: "fr"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing code",
			url:  "/locales",
			setupMocks: func(svc *mocks.MockLocaleService) {
				// No calls expected
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate code",
			url:  "/locales?code=en",
			setupMocks: func(svc *mocks.MockLocaleService) {
				svc.On("Create", mock.Anything, "en").
					Return(nil, fmt.Errorf("%w: en", service.ErrDuplicateLocale))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockLocaleService)
			tt.setupMocks(svc)
			router := newLocaleTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestLocaleHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := new(mocks.MockLocaleService)
		svc.On("Get", mock.Anything, "abc123").
			Return(nil, fmt.Errorf("%w: abc123", service.ErrLocaleNotFound))
		router := newLocaleTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/locales/abc123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "abc123")
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(mocks.MockLocaleService)
		svc.On("Get", mock.Anything, "zzz").
			Return(nil, fmt.Errorf("%w: zzz", service.ErrInvalidID))
		router := newLocaleTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/locales/zzz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLocaleHandler_List(t *testing.T) {
	svc := new(mocks.MockLocaleService)
	svc.On("List", mock.Anything).Return([]dto.LocaleResponse{
		{ID: "1", Code: "en"},
		{ID: "2", Code: "fr"},
	}, nil)
	router := newLocaleTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/locales", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "en")
	assert.Contains(t, w.Body.String(), "fr")
}

func TestLocaleHandler_Delete(t *testing.T) {
	t.Run("successful cascade delete", func(t *testing.T) {
		svc := new(mocks.MockLocaleService)
		svc.On("Delete", mock.Anything, "abc123").Return(nil)
		router := newLocaleTestRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/locales/abc123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown locale", func(t *testing.T) {
		svc := new(mocks.MockLocaleService)
		svc.On("Delete", mock.Anything, "abc123").
			Return(fmt.Errorf("%w: abc123", service.ErrLocaleNotFound))
		router := newLocaleTestRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/locales/abc123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
