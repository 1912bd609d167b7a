package config

import (
	"log/slog"
	"os"

	"github.com/spf13/cast"
)

// Compiled-in defaults. Every value can be overridden through the
// BOOLANG_* environment, coerced leniently (cast) so "1"/"true"/"TRUE"
// all work for booleans; a value cast cannot parse counts as false.
const (
	DefaultPrompt = "> "
	DefaultBanner = true

	EnvPrompt   = "BOOLANG_PROMPT"
	EnvBanner   = "BOOLANG_BANNER"
	EnvLogLevel = "BOOLANG_LOG_LEVEL"
)

// Banner lines printed in interactive mode.
const (
	BannerTitle = "boolang console. Boolean algebra over named, parameterised variables."
	BannerHint  = "Enter commands to interact with the engine. Enter 'exit' to quit."
)

// Runtime is the effective process configuration.
type Runtime struct {
	Prompt   string
	Banner   bool
	LogLevel slog.Level
}

// FromEnv builds the runtime configuration from defaults and the
// process environment.
func FromEnv() Runtime {
	rt := Runtime{
		Prompt:   DefaultPrompt,
		Banner:   DefaultBanner,
		LogLevel: slog.LevelWarn,
	}

	if v, ok := os.LookupEnv(EnvPrompt); ok {
		rt.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvBanner); ok {
		rt.Banner = cast.ToBool(v)
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		rt.LogLevel = parseLogLevel(v)
	}

	return rt
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}
