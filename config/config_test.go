package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_KEY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "https://api.trello.com/1", cfg.Trello.BaseURL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Minute, cfg.Redis.StatsTTL)
	assert.Equal(t, float64(0), cfg.RateLimit.RPS)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TRELLO_API_KEY", "key")
	t.Setenv("TRELLO_TOKEN", "tok")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("STATS_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "key", cfg.Trello.APIKey)
	assert.Equal(t, "tok", cfg.Trello.Token)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Redis.StatsTTL)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
}

func TestGetEnvAsInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	assert.Equal(t, 5432, getEnvAsInt("DB_PORT", 5432))
}

func TestValidate(t *testing.T) {
	t.Run("missing port", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Host: "localhost"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("database url alone is enough", func(t *testing.T) {
		cfg := &Config{
			Server:   ServerConfig{Port: "8000"},
			Database: DatabaseConfig{URL: "postgres://localhost/jobtrail"},
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rate limit needs a burst", func(t *testing.T) {
		cfg := &Config{
			Server:    ServerConfig{Port: "8000"},
			Database:  DatabaseConfig{Host: "localhost"},
			RateLimit: RateLimitConfig{RPS: 5},
		}
		assert.Error(t, cfg.Validate())
	})
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:3000, ,https://jobtrail.dev ")
	assert.Equal(t, []string{"http://localhost:3000", "https://jobtrail.dev"},
		getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}))

	t.Setenv("CORS_ALLOWED_ORIGINS", " , ")
	assert.Equal(t, []string{"*"}, getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}))
}
