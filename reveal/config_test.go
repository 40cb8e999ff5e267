package reveal

import (
	"testing"
	"time"
)

func TestConfigNormalizeClamps(t *testing.T) {
	got := Config{
		StartDelay:       -time.Second,
		Interval:         0,
		PunctuationPause: -time.Millisecond,
		PauseDuration:    -time.Millisecond,
		CaretBlink:       -1,
	}.normalize()

	want := Config{Interval: MinInterval, CaretBlink: DefaultCaretBlink}
	if got != want {
		t.Errorf("normalize() = %+v, want %+v", got, want)
	}
}

func TestConfigNormalizeKeepsValidValues(t *testing.T) {
	cfg := DefaultTypewriterConfig()
	if got := cfg.normalize(); got != cfg {
		t.Errorf("normalize() changed a valid config: %+v -> %+v", cfg, got)
	}
}

func TestConfigDelayAfter(t *testing.T) {
	cfg := Config{Interval: 16 * time.Millisecond, PunctuationPause: 120 * time.Millisecond}
	for _, ch := range []string{",", ".", ";", ":", "!", "?"} {
		if got := cfg.delayAfter(ch); got != 136*time.Millisecond {
			t.Errorf("delayAfter(%q) = %v, want 136ms", ch, got)
		}
	}
	for _, ch := range []string{"a", " ", "-", "'", "…"} {
		if got := cfg.delayAfter(ch); got != 16*time.Millisecond {
			t.Errorf("delayAfter(%q) = %v, want 16ms", ch, got)
		}
	}
}

func TestDefaultRuneConfig(t *testing.T) {
	cfg := DefaultRuneConfig()
	if cfg.StartDelay != time.Second || cfg.Interval != 70*time.Millisecond {
		t.Errorf("unexpected timing %+v", cfg)
	}
	if cfg.Glyphs != SGA {
		t.Error("Expected SGA glyphs by default")
	}
}
