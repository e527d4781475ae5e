package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8000/api/marketplace")
	t.Setenv("BACKEND_URL", "http://localhost:8000")
	t.Setenv("FRONTEND_URL", "http://localhost:3000")
	t.Setenv("AUTH_TOKEN", "token-123")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("APP_ENV", "test")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8000/api/marketplace", cfg.APIBaseURL)
	assert.Equal(t, "http://localhost:8000", cfg.BackendURL)
	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, "token-123", cfg.AuthToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "test", cfg.AppEnv)
}

func TestLoadConfig_BackendDefaultsToAPI(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:8000/api/marketplace")
	t.Setenv("BACKEND_URL", "")

	cfg := LoadConfig()
	assert.Equal(t, cfg.APIBaseURL, cfg.BackendURL)
}
