package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/funvibe/boolang/internal/config"
)

func TestDefaults(t *testing.T) {
	rt := config.FromEnv()

	assert.Equal(t, config.DefaultPrompt, rt.Prompt)
	assert.True(t, rt.Banner)
	assert.Equal(t, slog.LevelWarn, rt.LogLevel)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvPrompt, ">> ")
	t.Setenv(config.EnvBanner, "no")
	t.Setenv(config.EnvLogLevel, "debug")

	rt := config.FromEnv()

	assert.Equal(t, ">> ", rt.Prompt)
	assert.False(t, rt.Banner)
	assert.Equal(t, slog.LevelDebug, rt.LogLevel)
}

func TestBannerCoercion(t *testing.T) {
	// cast accepts the usual truthy spellings.
	for value, want := range map[string]bool{
		"1": true, "true": true, "TRUE": true,
		"0": false, "false": false, "no": false,
	} {
		t.Setenv(config.EnvBanner, value)
		assert.Equal(t, want, config.FromEnv().Banner, "value %q", value)
	}
}

func TestUnknownLogLevelFallsBack(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "chatty")
	assert.Equal(t, slog.LevelWarn, config.FromEnv().LogLevel)
}
