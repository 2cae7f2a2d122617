// Package app provides router configuration.
package app

import (
	"github.com/opentranslation/translation-service/config"
	"github.com/opentranslation/translation-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the HTTP router configuration from services and
// database components.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if db.TranslationCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_translations", db.TranslationCircuitBreaker)
	}
	if db.LogsCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		LoggingService:     db.LoggingService,
		AuthService:        services.AuthService,
		TranslationService: services.TranslationService,
		LocaleService:      services.LocaleService,
		TagService:         services.TagService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
