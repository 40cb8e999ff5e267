package reveal

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// State is the phase of a Typewriter
type State int

const (
	// Idle is the phase before the first string starts typing
	Idle State = iota
	// Typing reveals characters of the current string
	Typing
	// Paused holds a completed string before the next one starts
	Paused
	// Completed is terminal: every string has been typed
	Completed
)

var stateNames = [...]string{"idle", "typing", "paused", "completed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TypewriterFrame is the render state of a Typewriter
type TypewriterFrame struct {
	// Lines holds the displayed text of every started string
	Lines []string `json:"lines"`
	// Line is the index of the line the caret sits on
	Line   int   `json:"line"`
	Caret  bool  `json:"caret"`
	Typing bool  `json:"typing"`
	State  State `json:"state"`
}

// Prefix returns everything displayed so far as one string
func (f TypewriterFrame) Prefix() string {
	return strings.Join(f.Lines, "")
}

// Typewriter types a queue of strings one after another. Pending characters
// are absent rather than substituted; the config's glyph table is ignored.
//
// The caret is solid while typing, blinks every CaretBlink while idle or
// paused, and disappears on completion. Blink and typing run on separate
// timers owned by the instance.
type Typewriter struct {
	clock Clock
	cfg   Config

	mu        sync.Mutex
	queue     [][]string
	index     int // current string
	char      int // characters of the current string revealed
	lines     []string
	state     State
	typing    bool
	caret     bool
	started   bool
	cancelled bool
	gen       uint64 // bumped on cancel
	blinkGen  uint64 // bumped whenever the blink timer is started or stopped
	step      Timer
	blink     Timer

	notify notifier[TypewriterFrame]
}

// NewTypewriter creates a Typewriter for texts. A nil clock uses RealClock.
func NewTypewriter(clock Clock, texts []string, cfg Config) *Typewriter {
	if clock == nil {
		clock = RealClock()
	}
	queue := make([][]string, len(texts))
	for i, text := range texts {
		queue[i] = Split(text)
	}
	return &Typewriter{
		clock: clock,
		cfg:   cfg.normalize(),
		queue: queue,
		state: Idle,
		caret: true,
	}
}

// Start begins typing, after the start delay when one is configured.
// An empty queue completes immediately.
func (t *Typewriter) Start() {
	t.mu.Lock()
	if t.started || t.cancelled {
		t.mu.Unlock()
		return
	}
	t.started = true

	if len(t.queue) > 0 {
		t.lines = []string{""}
	}
	switch {
	case len(t.queue) == 0:
		t.completeLocked()
	case t.cfg.StartDelay > 0:
		t.startBlinkLocked()
		t.scheduleLocked(t.cfg.StartDelay)
	default:
		t.beginStringLocked()
		t.scheduleLocked(t.cfg.Interval)
	}
	t.notify.enqueue(t.frameLocked())
	t.mu.Unlock()

	t.notify.drain()
}

// Cancel stops both timers and discards undelivered frames
func (t *Typewriter) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancelled {
		return
	}
	t.cancelled = true
	t.gen++
	t.stopStepLocked()
	t.stopBlinkLocked()
	t.notify.discard()
	Logger().Debug("typewriter cancelled", "string", t.index, "state", t.state)
}

// Subscribe registers fn for every subsequent frame
func (t *Typewriter) Subscribe(fn func(TypewriterFrame)) func() {
	return t.notify.subscribe(fn)
}

// Frame renders the current state
func (t *Typewriter) Frame() TypewriterFrame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frameLocked()
}

// State returns the current phase
func (t *Typewriter) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Done reports whether the queue has been fully typed
func (t *Typewriter) Done() bool {
	return t.State() == Completed
}

// Scheduled reports whether a typing or pause step is pending
func (t *Typewriter) Scheduled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step != nil
}

// Blinking reports whether the caret blink timer is running
func (t *Typewriter) Blinking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.blink != nil
}

func (t *Typewriter) onStep(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.cancelled {
		t.mu.Unlock()
		return
	}
	t.step = nil

	switch t.state {
	case Idle:
		t.beginStringLocked()
		t.scheduleLocked(t.cfg.Interval)
	case Typing:
		t.typeLocked()
	case Paused:
		t.index++
		t.char = 0
		if t.index >= len(t.queue) {
			t.completeLocked()
		} else {
			t.beginStringLocked()
			t.scheduleLocked(t.cfg.Interval)
		}
	case Completed:
		t.mu.Unlock()
		return
	}
	t.notify.enqueue(t.frameLocked())
	t.mu.Unlock()

	t.notify.drain()
}

// typeLocked reveals the next character of the current string, or handles
// the end of the string when nothing is left. A string's line appears with
// its first character, so the caret never sits on an empty line between
// strings.
func (t *Typewriter) typeLocked() {
	for len(t.lines) <= t.index {
		t.lines = append(t.lines, "")
	}
	text := t.queue[t.index]
	last := ""
	if t.char < len(text) {
		last = text[t.char]
		t.char++
		t.lines[t.index] = strings.Join(text[:t.char], "")
		if t.char < len(text) {
			t.scheduleLocked(t.cfg.delayAfter(last))
			return
		}
	}

	if t.cfg.PauseDuration > 0 {
		t.state = Paused
		t.typing = false
		t.startBlinkLocked()
		t.scheduleLocked(t.cfg.PauseDuration)
		return
	}

	t.index++
	t.char = 0
	if t.index >= len(t.queue) {
		t.completeLocked()
		return
	}
	t.scheduleLocked(t.cfg.delayAfter(last))
}

func (t *Typewriter) beginStringLocked() {
	t.state = Typing
	t.typing = true
	t.stopBlinkLocked()
	t.caret = true
}

func (t *Typewriter) completeLocked() {
	t.state = Completed
	t.typing = false
	t.stopStepLocked()
	t.stopBlinkLocked()
	t.caret = false
	Logger().Debug("typewriter complete", "strings", len(t.queue))
}

func (t *Typewriter) onBlink(gen uint64) {
	t.mu.Lock()
	if gen != t.blinkGen || t.cancelled {
		t.mu.Unlock()
		return
	}
	t.blink = nil
	if t.typing || t.state == Completed {
		t.mu.Unlock()
		return
	}
	t.caret = !t.caret
	t.blink = t.afterLocked(t.cfg.CaretBlink, gen, t.onBlink)
	t.notify.enqueue(t.frameLocked())
	t.mu.Unlock()

	t.notify.drain()
}

func (t *Typewriter) startBlinkLocked() {
	if t.blink != nil {
		return
	}
	t.blinkGen++
	t.caret = true
	t.blink = t.afterLocked(t.cfg.CaretBlink, t.blinkGen, t.onBlink)
}

func (t *Typewriter) stopBlinkLocked() {
	t.blinkGen++
	if t.blink != nil {
		t.blink.Stop()
		t.blink = nil
	}
}

func (t *Typewriter) scheduleLocked(d time.Duration) {
	t.step = t.afterLocked(d, t.gen, t.onStep)
}

func (t *Typewriter) stopStepLocked() {
	if t.step != nil {
		t.step.Stop()
		t.step = nil
	}
}

func (t *Typewriter) afterLocked(d time.Duration, gen uint64, fn func(uint64)) Timer {
	return t.clock.AfterFunc(d, func() { fn(gen) })
}

func (t *Typewriter) frameLocked() TypewriterFrame {
	line := t.index
	if line >= len(t.lines) {
		line = len(t.lines) - 1
	}
	if line < 0 {
		line = 0
	}
	return TypewriterFrame{
		Lines:  append([]string(nil), t.lines...),
		Line:   line,
		Caret:  t.caret,
		Typing: t.typing,
		State:  t.state,
	}
}

// UnmarshalText decodes a state name
func (s *State) UnmarshalText(text []byte) error {
	for i, name := range stateNames {
		if name == string(text) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("reveal: unknown state %q", text)
}
