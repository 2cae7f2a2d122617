// Package app provides service initialization.
package app

import (
	"github.com/opentranslation/translation-service/config"
	"github.com/opentranslation/translation-service/internal/service"
)

// ServiceComponents holds the domain services.
type ServiceComponents struct {
	AuthService        service.AuthService
	TranslationService service.TranslationService
	LocaleService      service.LocaleService
	TagService         service.TagService
}

// InitializeServices builds the domain services on top of the database
// components.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	return &ServiceComponents{
		AuthService:        service.NewAuthService(cfg.Auth),
		TranslationService: service.NewTranslationService(db.TranslationRepo, db.LocaleRepo, db.TagRepo),
		LocaleService:      service.NewLocaleService(db.LocaleRepo, db.TranslationRepo),
		TagService:         service.NewTagService(db.TagRepo),
	}
}
