package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MATHMENTOR_LLM_PROVIDER", "MATHMENTOR_OPENAI_API_KEY",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5, cfg.QuestionCount)
	assert.True(t, cfg.IsDevelopment(), "empty FrontendURL should mean development")
	assert.False(t, cfg.HasProvider(), "no keys should mean no provider")
}

func TestLoadOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("MATHMENTOR_QUESTION_COUNT", "7")
	t.Setenv("FRONTEND_URL", "https://mathmentor.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 7, cfg.QuestionCount)
	assert.False(t, cfg.IsDevelopment(), "remote FrontendURL should not mean development")
}

func TestLoadRejectsBadQuestionCount(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MATHMENTOR_QUESTION_COUNT", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestExplicitProviderRequiresKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MATHMENTOR_LLM_PROVIDER", "openai")

	_, err := Load()
	require.Error(t, err)
}

func TestHasProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("MATHMENTOR_LLM_PROVIDER", "openai")
	t.Setenv("MATHMENTOR_OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.HasProvider())
}

func TestDiscoveryFallback(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.True(t, cfg.HasProvider())
}
