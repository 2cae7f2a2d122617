//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/opentranslation/translation-service/config"
)

func TestInitializeApp_DatabaseError(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{
			Port:       "8080",
			RateLimit:  100,
			RateWindow: time.Minute,
		},
		Database: config.DatabaseConfig{
			URI:          "://not-a-uri",
			DatabaseName: "translations",
		},
	}

	router, err := InitializeApp(cfg)

	assert.Error(t, err)
	assert.Nil(t, router)
}

func TestInitializeDatabase_InvalidURI(t *testing.T) {
	cfg := config.DatabaseConfig{
		URI:          "://not-a-uri",
		DatabaseName: "translations",
	}

	components, err := InitializeDatabase(cfg)

	assert.Error(t, err)
	assert.Nil(t, components)
}
