// Package reveal drives character-by-character text reveal effects.
//
// Two variants share one timing model:
//
//   - [Reveal] resolves a single string left to right. With a [GlyphTable]
//     in its [Config], pending characters are drawn as substitute glyphs
//     (cipher-to-plaintext); without one they are drawn unchanged.
//   - [Typewriter] types a queue of strings, pausing between them, with a
//     caret that is solid while typing and blinks while waiting.
//
// [Group] runs several independently timed Reveals as one paragraph.
//
// Every transition is a callback scheduled on a [Clock]. Each instance owns
// its timer handles and releases them on completion or [Reveal.Cancel].
// Hosts observe state through Subscribe; the engine never draws anything
// itself. Use [FakeClock] to step an instance deterministically.
package reveal
