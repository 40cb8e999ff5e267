package main

import (
	"log/slog"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "TEMPLATES_GLOB", "STATIC_DIR",
		"REVEAL_SPEED_MS", "REVEAL_START_DELAY_MS",
		"REVEAL_QUICK_SPEED_MS", "REVEAL_QUICK_START_DELAY_MS",
		"TYPEWRITER_SPEED_MS", "TYPEWRITER_PAUSE_MS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg := loadConfig()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Rune.Interval != 70*time.Millisecond || cfg.Rune.StartDelay != time.Second {
		t.Errorf("unexpected rune timing %+v", cfg.Rune)
	}
	if cfg.QuickRune.Interval != 30*time.Millisecond || cfg.QuickRune.StartDelay != 500*time.Millisecond {
		t.Errorf("unexpected quick rune timing %+v", cfg.QuickRune)
	}
	if cfg.Typewriter.Interval != 16*time.Millisecond || cfg.Typewriter.PauseDuration != 200*time.Millisecond {
		t.Errorf("unexpected typewriter timing %+v", cfg.Typewriter)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REVEAL_SPEED_MS", "25")
	t.Setenv("TYPEWRITER_PAUSE_MS", "0")

	cfg := loadConfig()
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.Rune.Interval != 25*time.Millisecond {
		t.Errorf("Rune.Interval = %v, want 25ms", cfg.Rune.Interval)
	}
	if cfg.Typewriter.PauseDuration != 0 {
		t.Errorf("Typewriter.PauseDuration = %v, want 0", cfg.Typewriter.PauseDuration)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TYPEWRITER_SPEED_MS", "fast")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := loadConfig()
	if cfg.Typewriter.Interval != 16*time.Millisecond {
		t.Errorf("Typewriter.Interval = %v, want default 16ms", cfg.Typewriter.Interval)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}
