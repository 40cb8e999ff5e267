package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/reveal"
)

// Config is the server configuration, read from the environment (and .env
// through godotenv autoload).
type Config struct {
	Port          string
	LogLevel      slog.Level
	TemplatesGlob string
	StaticDir     string

	// Rune is the About-page reveal timing, QuickRune the opening paragraph's
	Rune      reveal.Config
	QuickRune reveal.Config

	Typewriter reveal.Config
}

func loadConfig() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	templates := os.Getenv("TEMPLATES_GLOB")
	if templates == "" {
		templates = "templates/*"
	}

	static := os.Getenv("STATIC_DIR")
	if static == "" {
		static = "./static"
	}

	runeCfg := reveal.DefaultRuneConfig()
	runeCfg.Interval = envMillis("REVEAL_SPEED_MS", runeCfg.Interval)
	runeCfg.StartDelay = envMillis("REVEAL_START_DELAY_MS", runeCfg.StartDelay)

	quick := reveal.DefaultRuneConfig()
	quick.Interval = envMillis("REVEAL_QUICK_SPEED_MS", 30*time.Millisecond)
	quick.StartDelay = envMillis("REVEAL_QUICK_START_DELAY_MS", 500*time.Millisecond)

	tw := reveal.DefaultTypewriterConfig()
	tw.Interval = envMillis("TYPEWRITER_SPEED_MS", tw.Interval)
	tw.PauseDuration = envMillis("TYPEWRITER_PAUSE_MS", tw.PauseDuration)

	return Config{
		Port:          port,
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
		TemplatesGlob: templates,
		StaticDir:     static,
		Rune:          runeCfg,
		QuickRune:     quick,
		Typewriter:    tw,
	}
}

// envMillis reads a millisecond count, keeping def when the variable is
// unset or not a number
func envMillis(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	ms, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		slog.Warn("ignoring invalid duration", "key", key, "value", raw, "default", def)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if raw == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		slog.Warn("unknown LOG_LEVEL, using info", "value", raw)
		return slog.LevelInfo
	}
	return level
}
