// Package main is the entry point for the translation-service application.
//
// @title           Translation Service API
// @version         1.0.0
// @description     API for managing translation strings across locales, with tag and content search and bulk export.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/opentranslation/translation-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token. Format: "Bearer {token}". Obtain one from /api/auth/token.
//
// @tag.name        Translations
// @tag.description Translation management and search operations
//
// @tag.name        Locales
// @tag.description Locale management operations
//
// @tag.name        Tags
// @tag.description Tag management operations
//
// @tag.name        Auth
// @tag.description Token issuance endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/opentranslation/translation-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/opentranslation/translation-service/config"
	"github.com/opentranslation/translation-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
