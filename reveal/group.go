package reveal

import (
	"strings"
	"sync"
)

// Fragment is one independently timed piece of a paragraph
type Fragment struct {
	Text   string
	Config Config
}

// GroupFrame is a snapshot of every fragment in a Group
type GroupFrame struct {
	Fragments []Frame `json:"fragments"`
	Done      bool    `json:"done"`
}

// String concatenates the displayed text of all fragments
func (f GroupFrame) String() string {
	var b strings.Builder
	for _, frag := range f.Fragments {
		b.WriteString(frag.String())
	}
	return b.String()
}

// Group runs several Reveals side by side, each on its own timer, and
// publishes a combined snapshot whenever any of them changes.
type Group struct {
	parts  []*Reveal
	unsubs []func()

	mu        sync.Mutex // orders snapshot and enqueue across fragments
	cancelled bool
	notify    notifier[GroupFrame]
}

// NewGroup creates a Reveal per fragment on the shared clock. The clock is
// only a scheduler; fragments share no state.
func NewGroup(clock Clock, fragments []Fragment) *Group {
	g := &Group{parts: make([]*Reveal, len(fragments))}
	for i, frag := range fragments {
		r := New(clock, frag.Text, frag.Config)
		g.parts[i] = r
		g.unsubs = append(g.unsubs, r.Subscribe(func(Frame) { g.publish() }))
	}
	return g
}

// Start starts every fragment
func (g *Group) Start() {
	for _, r := range g.parts {
		r.Start()
	}
	if len(g.parts) == 0 {
		g.publish()
	}
}

// Cancel cancels every fragment and detaches from them. A fragment drain
// already in flight publishes nothing once Cancel has returned.
func (g *Group) Cancel() {
	g.mu.Lock()
	g.cancelled = true
	g.mu.Unlock()

	for _, r := range g.parts {
		r.Cancel()
	}
	for _, unsub := range g.unsubs {
		unsub()
	}
	g.notify.discard()
}

// Subscribe registers fn for every subsequent snapshot
func (g *Group) Subscribe(fn func(GroupFrame)) func() {
	return g.notify.subscribe(fn)
}

// Frame returns the current snapshot
func (g *Group) Frame() GroupFrame {
	frame := GroupFrame{Fragments: make([]Frame, len(g.parts)), Done: true}
	for i, r := range g.parts {
		f := r.Frame()
		frame.Fragments[i] = f
		frame.Done = frame.Done && f.Done
	}
	return frame
}

// Done reports whether every fragment is fully revealed
func (g *Group) Done() bool {
	for _, r := range g.parts {
		if !r.Done() {
			return false
		}
	}
	return true
}

// Len returns the number of fragments
func (g *Group) Len() int {
	return len(g.parts)
}

func (g *Group) publish() {
	g.mu.Lock()
	if g.cancelled {
		g.mu.Unlock()
		return
	}
	g.notify.enqueue(g.Frame())
	g.mu.Unlock()

	g.notify.drain()
}
