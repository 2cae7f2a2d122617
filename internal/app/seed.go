// Package app provides startup seeding of default reference data.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/opentranslation/translation-service/internal/repository"
)

var (
	defaultLocales = []string{"en", "fr", "es"}
	defaultTags    = []string{"general", "ui", "error"}
)

// seedDefaults ensures the default locales and tags exist. Resolve is an
// upsert, so seeding is idempotent and safe to run on every boot.
func seedDefaults(localeRepo repository.LocaleRepositoryInterface, tagRepo repository.TagRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, code := range defaultLocales {
		if _, err := localeRepo.Resolve(ctx, code); err != nil {
			log.Warn().Err(err).Str("locale", code).Msg("Failed to seed default locale")
			return err
		}
	}

	for _, name := range defaultTags {
		if _, err := tagRepo.Resolve(ctx, name); err != nil {
			log.Warn().Err(err).Str("tag", name).Msg("Failed to seed default tag")
			return err
		}
	}

	log.Info().
		Strs("locales", defaultLocales).
		Strs("tags", defaultTags).
		Msg("Seeded default locales and tags")
	return nil
}
