// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/opentranslation/translation-service/config"
	"github.com/opentranslation/translation-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Seed.Defaults {
		if err := seedDefaults(dbComponents.LocaleRepo, dbComponents.TagRepo); err != nil {
			log.Warn().Err(err).Msg("Failed to seed default locales and tags")
		}
	}

	serviceComponents := InitializeServices(cfg, dbComponents)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config), nil
}
