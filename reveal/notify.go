package reveal

import "sync"

type subscriber[F any] struct {
	id uint64
	fn func(F)
}

// notifier delivers frames to subscribers in the order they were queued.
// Frames are queued while the owner holds its state lock and drained after
// the lock is released, so subscribers may call back into the owner.
// A drain already in progress on another call picks up newly queued frames.
type notifier[F any] struct {
	mu         sync.Mutex
	subs       []subscriber[F]
	nextID     uint64
	queue      []F
	delivering bool
}

func (n *notifier[F]) subscribe(fn func(F)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscriber[F]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			for i, s := range n.subs {
				if s.id == id {
					n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (n *notifier[F]) enqueue(f F) {
	n.mu.Lock()
	n.queue = append(n.queue, f)
	n.mu.Unlock()
}

// discard drops frames that have not been delivered yet
func (n *notifier[F]) discard() {
	n.mu.Lock()
	n.queue = nil
	n.mu.Unlock()
}

func (n *notifier[F]) drain() {
	n.mu.Lock()
	if n.delivering {
		n.mu.Unlock()
		return
	}
	n.delivering = true
	for len(n.queue) > 0 {
		f := n.queue[0]
		n.queue = n.queue[1:]
		subs := append([]subscriber[F](nil), n.subs...)
		n.mu.Unlock()

		for _, s := range subs {
			s.fn(f)
		}

		n.mu.Lock()
	}
	n.delivering = false
	n.mu.Unlock()
}
