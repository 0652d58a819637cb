package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_NAME", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
		"DB_PASSWORD", "DB_SSLMODE", "OPENAI_EMBED_MODEL", "OPENAI_CHAT_MODEL",
		"EMBEDDING_DIMENSION", "MATCH_THRESHOLD", "MATCH_COUNT", "AI_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "text-embedding-3-small", cfg.OpenAIEmbedModel)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIChatModel)
	assert.Equal(t, 1536, cfg.EmbeddingDimension)
	assert.Equal(t, 0.3, cfg.MatchThreshold)
	assert.Equal(t, 2, cfg.MatchCount)
	assert.Equal(t, 60, cfg.AITimeoutSeconds)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("MATCH_THRESHOLD", "0.2")
	t.Setenv("MATCH_COUNT", "5")
	t.Setenv("AI_TIMEOUT_SECONDS", "15")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 0.2, cfg.MatchThreshold)
	assert.Equal(t, 5, cfg.MatchCount)
	assert.Equal(t, 15, cfg.AITimeoutSeconds)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MATCH_THRESHOLD", "not-a-float")
	t.Setenv("MATCH_COUNT", "not-an-int")

	cfg := Load()

	assert.Equal(t, 0.3, cfg.MatchThreshold)
	assert.Equal(t, 2, cfg.MatchCount)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost", DBPort: "5432", DBName: "products",
		DBUser: "shop", DBPassword: "secret", DBSSLMode: "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 dbname=products user=shop password=secret sslmode=disable",
		cfg.DSN())
}
