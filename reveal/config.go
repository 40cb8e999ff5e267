package reveal

import "time"

const (
	// MinInterval replaces non-positive per-character intervals
	MinInterval = time.Millisecond

	// DefaultCaretBlink is the caret toggle period while the typewriter waits
	DefaultCaretBlink = 1200 * time.Millisecond
)

// Config carries the timing of a reveal sequence. It is shared by both
// variants; fields a variant does not use are ignored.
type Config struct {
	// StartDelay holds the sequence before the first character is scheduled
	StartDelay time.Duration

	// Interval is the delay between consecutive characters
	Interval time.Duration

	// PunctuationPause is added to Interval after a character in Punctuation
	PunctuationPause time.Duration

	// PauseDuration is the typewriter hold after each completed string.
	// Zero means the next string continues on the same tick.
	PauseDuration time.Duration

	// CaretBlink is the typewriter caret toggle period
	CaretBlink time.Duration

	// Glyphs substitutes pending characters. Nil shows them unchanged.
	Glyphs *GlyphTable
}

// DefaultRuneConfig returns the cipher-to-plaintext defaults: the runes hold
// for a second, then resolve at 70ms per character.
func DefaultRuneConfig() Config {
	return Config{
		StartDelay: time.Second,
		Interval:   70 * time.Millisecond,
		Glyphs:     SGA,
	}
}

// DefaultTypewriterConfig returns the typewriter defaults
func DefaultTypewriterConfig() Config {
	return Config{
		Interval:         16 * time.Millisecond,
		PunctuationPause: 120 * time.Millisecond,
		PauseDuration:    200 * time.Millisecond,
		CaretBlink:       DefaultCaretBlink,
	}
}

// normalize clamps values that would stall the sequence or spin a timer
func (c Config) normalize() Config {
	log := Logger()
	if c.Interval <= 0 {
		log.Warn("reveal interval clamped", "interval", c.Interval, "min", MinInterval)
		c.Interval = MinInterval
	}
	if c.StartDelay < 0 {
		log.Warn("negative start delay clamped", "start_delay", c.StartDelay)
		c.StartDelay = 0
	}
	if c.PunctuationPause < 0 {
		log.Warn("negative punctuation pause clamped", "punctuation_pause", c.PunctuationPause)
		c.PunctuationPause = 0
	}
	if c.PauseDuration < 0 {
		log.Warn("negative pause duration clamped", "pause", c.PauseDuration)
		c.PauseDuration = 0
	}
	if c.CaretBlink <= 0 {
		c.CaretBlink = DefaultCaretBlink
	}
	return c
}

// delayAfter returns the wait that follows revealing ch
func (c Config) delayAfter(ch string) time.Duration {
	if c.PunctuationPause > 0 && IsPunctuation(ch) {
		return c.Interval + c.PunctuationPause
	}
	return c.Interval
}
