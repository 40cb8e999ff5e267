package reveal

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Punctuation lists the characters that earn the extra punctuation pause
const Punctuation = ",.;:!?"

// Split breaks text into user-perceived characters (grapheme clusters), the
// unit revealed by one tick.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	chars := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}

// IsPunctuation reports whether ch is one of Punctuation
func IsPunctuation(ch string) bool {
	return len(ch) == 1 && strings.Contains(Punctuation, ch)
}
