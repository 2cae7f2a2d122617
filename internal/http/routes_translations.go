package http

import (
	"github.com/gin-gonic/gin"

	"github.com/opentranslation/translation-service/internal/service"
)

// TranslationRoutes handles translation, locale and tag route registration.
type TranslationRoutes struct {
	translationHandler *TranslationHandler
	localeHandler      *LocaleHandler
	tagHandler         *TagHandler
}

// NewTranslationRoutes creates a new TranslationRoutes instance.
func NewTranslationRoutes(
	translationService service.TranslationService,
	localeService service.LocaleService,
	tagService service.TagService,
) *TranslationRoutes {
	return &TranslationRoutes{
		translationHandler: NewTranslationHandler(translationService),
		localeHandler:      NewLocaleHandler(localeService),
		tagHandler:         NewTagHandler(tagService),
	}
}

// RegisterRoutes registers translation, locale and tag routes on the group.
// The group is expected to carry JWT auth when authentication is enabled.
func (r *TranslationRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	translations := rg.Group("/translations")
	{
		// Fixed paths before the :id wildcard so gin routes them first.
		translations.GET("/search", r.translationHandler.Search)
		translations.GET("/export", r.translationHandler.Export)
		translations.POST("", r.translationHandler.Create)
		translations.GET("/:id", r.translationHandler.Get)
		translations.PUT("/:id", r.translationHandler.Update)
	}

	locales := rg.Group("/locales")
	{
		locales.POST("", r.localeHandler.Create)
		locales.GET("", r.localeHandler.List)
		locales.GET("/:id", r.localeHandler.Get)
		locales.DELETE("/:id", r.localeHandler.Delete)
	}

	tags := rg.Group("/tags")
	{
		tags.POST("", r.tagHandler.Create)
		tags.GET("", r.tagHandler.List)
		tags.GET("/:id", r.tagHandler.Get)
	}
}

// GetTranslationHandler returns the underlying translation handler.
func (r *TranslationRoutes) GetTranslationHandler() *TranslationHandler {
	return r.translationHandler
}
