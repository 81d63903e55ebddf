package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load()

	assert.True(t, strings.HasSuffix(cfg.DatabaseURL, "field_sales.db"))
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/sales")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@localhost:5432/sales", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}
