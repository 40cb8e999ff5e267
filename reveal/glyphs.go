package reveal

import "unicode"

// GlyphTable maps a source character to the glyph shown while that
// character is still pending. A nil table substitutes nothing.
type GlyphTable struct {
	glyphs map[string]string
}

// NewGlyphTable builds a case-insensitive table: each letter key is
// registered under both its lower and upper case form.
func NewGlyphTable(pairs map[rune]string) *GlyphTable {
	t := &GlyphTable{glyphs: make(map[string]string, len(pairs)*2)}
	for r, glyph := range pairs {
		t.glyphs[string(unicode.ToLower(r))] = glyph
		t.glyphs[string(unicode.ToUpper(r))] = glyph
	}
	return t
}

// Lookup returns the pending glyph for ch, if any
func (t *GlyphTable) Lookup(ch string) (string, bool) {
	if t == nil {
		return "", false
	}
	g, ok := t.glyphs[ch]
	return g, ok
}

// Substitute returns the pending glyph for ch, or ch itself when the table
// has no entry.
func (t *GlyphTable) Substitute(ch string) string {
	if g, ok := t.Lookup(ch); ok {
		return g
	}
	return ch
}

// Len returns the number of keys, counting both cases of a letter
func (t *GlyphTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.glyphs)
}

// SGA is the Standard Galactic Alphabet rendered with Unicode look-alikes.
// Some glyphs span two code points.
var SGA = NewGlyphTable(map[rune]string{
	'a': "ᔑ",
	'b': "ʖ",
	'c': "ᓵ",
	'd': "↸",
	'e': "ᒷ",
	'f': "⎓",
	'g': "⊣",
	'h': "⍑",
	'i': "╎",
	'j': "⋮",
	'k': "ꖎ",
	'l': "ꖃ",
	'm': "ᒲ",
	'n': "リ",
	'o': "𝙹",
	'p': "!¡",
	'q': "ᑑ",
	'r': "∷",
	's': "ᓭ",
	't': "ℸ ̣",
	'u': "⚍",
	'v': "⍊",
	'w': "∴",
	'x': "̇/",
	'y': "||",
	'z': "⨅",
})
