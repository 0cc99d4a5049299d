package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "pg-pass")
	t.Setenv("AI_API_KEY", "sk-test")
	t.Setenv("JWT_SECRET", "jwt-test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredSecrets(t)

	cfg, err := Load("nonexistent.env")

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "gpt-3.5-turbo", cfg.AIModel)
	assert.Equal(t, "https://api.openai.com/v1", cfg.AIBaseURL)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, "sk-test", cfg.AIAPIKey)
}

func TestLoad_MissingAIKeyFails(t *testing.T) {
	t.Setenv("DB_PASSWORD", "pg-pass")
	t.Setenv("JWT_SECRET", "jwt-test")
	t.Setenv("AI_API_KEY", "")

	_, err := Load("nonexistent.env")

	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "journal",
		DBPassword: "secret",
		DBName:     "journal_db",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://journal:secret@db:5433/journal_db?sslmode=disable", cfg.GetDSN())
}

func TestGetAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://localhost:3000, https://journal.example.com"}

	assert.Equal(t,
		[]string{"http://localhost:3000", "https://journal.example.com"},
		cfg.GetAllowedOrigins())
}
