package reveal

import (
	"strings"
	"sync"
	"time"
)

// Cell is one character of a rendered frame
type Cell struct {
	// Char is the source character
	Char string `json:"char"`
	// Display is what the host paints: Char once revealed, otherwise the
	// pending glyph
	Display  string `json:"display"`
	Revealed bool   `json:"revealed"`
}

// Frame is the full render state of a Reveal
type Frame struct {
	Cells    []Cell `json:"cells"`
	Revealed int    `json:"revealed"`
	Total    int    `json:"total"`
	Done     bool   `json:"done"`
}

// String concatenates the displayed characters
func (f Frame) String() string {
	var b strings.Builder
	for _, c := range f.Cells {
		b.WriteString(c.Display)
	}
	return b.String()
}

// Render is the pure rendering function: character i shows itself when
// i < revealed and its pending glyph otherwise.
func Render(chars []string, revealed int, glyphs *GlyphTable) Frame {
	if revealed < 0 {
		revealed = 0
	}
	if revealed > len(chars) {
		revealed = len(chars)
	}
	cells := make([]Cell, len(chars))
	for i, ch := range chars {
		cell := Cell{Char: ch, Display: ch, Revealed: i < revealed}
		if !cell.Revealed {
			cell.Display = glyphs.Substitute(ch)
		}
		cells[i] = cell
	}
	return Frame{
		Cells:    cells,
		Revealed: revealed,
		Total:    len(chars),
		Done:     revealed == len(chars),
	}
}

// Reveal resolves a single string left to right, one character per tick,
// after an initial delay. It is the cipher-to-plaintext variant when the
// config carries a glyph table.
type Reveal struct {
	clock Clock
	cfg   Config

	mu        sync.Mutex
	chars     []string
	revealed  int
	started   bool
	cancelled bool
	gen       uint64 // bumped on cancel and restart; stale callbacks compare against it
	timer     Timer

	notify notifier[Frame]
}

// New creates a Reveal for text. A nil clock uses RealClock. Nothing is
// scheduled until Start.
func New(clock Clock, text string, cfg Config) *Reveal {
	if clock == nil {
		clock = RealClock()
	}
	return &Reveal{
		clock: clock,
		cfg:   cfg.normalize(),
		chars: Split(text),
	}
}

// Start schedules the first tick after the start delay and publishes the
// initial frame. Empty text completes immediately without a timer.
// Start is a no-op on a started or cancelled Reveal.
func (r *Reveal) Start() {
	r.mu.Lock()
	if r.started || r.cancelled {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.beginLocked()
	r.mu.Unlock()

	r.notify.drain()
}

// SetText replaces the text. A running sequence is cancelled and restarted
// from zero with a fresh schedule, start delay included.
func (r *Reveal) SetText(text string) {
	r.mu.Lock()
	if r.cancelled {
		r.mu.Unlock()
		return
	}
	r.stopLocked()
	r.chars = Split(text)
	r.revealed = 0
	if !r.started {
		r.mu.Unlock()
		return
	}
	Logger().Debug("reveal restarted", "chars", len(r.chars))
	r.beginLocked()
	r.mu.Unlock()

	r.notify.drain()
}

// Cancel stops the pending timer and discards undelivered frames. After
// Cancel returns no callback mutates the Reveal or notifies subscribers.
func (r *Reveal) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelled {
		return
	}
	r.cancelled = true
	r.stopLocked()
	r.notify.discard()
	Logger().Debug("reveal cancelled", "revealed", r.revealed, "total", len(r.chars))
}

// Subscribe registers fn for every subsequent frame and returns a function
// that removes it.
func (r *Reveal) Subscribe(fn func(Frame)) func() {
	return r.notify.subscribe(fn)
}

// Frame renders the current state
func (r *Reveal) Frame() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameLocked()
}

// Revealed returns the number of resolved leading characters
func (r *Reveal) Revealed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed
}

// Done reports whether every character is resolved
func (r *Reveal) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed == len(r.chars)
}

// Scheduled reports whether a tick is pending
func (r *Reveal) Scheduled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer != nil
}

func (r *Reveal) beginLocked() {
	if len(r.chars) > 0 {
		r.scheduleLocked(r.cfg.StartDelay)
	}
	r.notify.enqueue(r.frameLocked())
}

func (r *Reveal) tick(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || r.cancelled {
		r.mu.Unlock()
		return
	}
	r.timer = nil
	if r.revealed >= len(r.chars) {
		r.mu.Unlock()
		return
	}

	ch := r.chars[r.revealed]
	r.revealed++
	if r.revealed < len(r.chars) {
		r.scheduleLocked(r.cfg.delayAfter(ch))
	} else {
		Logger().Debug("reveal complete", "chars", len(r.chars))
	}
	r.notify.enqueue(r.frameLocked())
	r.mu.Unlock()

	r.notify.drain()
}

func (r *Reveal) scheduleLocked(d time.Duration) {
	gen := r.gen
	r.timer = r.clock.AfterFunc(d, func() { r.tick(gen) })
}

// stopLocked releases the timer handle and invalidates callbacks already in
// flight.
func (r *Reveal) stopLocked() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Reveal) frameLocked() Frame {
	return Render(r.chars, r.revealed, r.cfg.Glyphs)
}
