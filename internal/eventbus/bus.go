// Package eventbus is a small in-memory fanout used to decouple the board
// manager from observers (the terminal view, tests).
//
// Contract:
//   - Publish never blocks.
//   - Subscribers get buffered channels; slow subscribers lose events.
package eventbus

import (
	"sync"
	"time"
)

// Event is a lightweight signal. Data should be small and value-typed.
type Event struct {
	Type string
	Time time.Time
	Data any
}

type Bus struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]chan Event
}

func New() *Bus {
	return &Bus{subs: map[uint64]chan Event{}}
}

func (b *Bus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	// Sends happen under the lock so Unsubscribe can never close a channel
	// mid-send. Deliveries are non-blocking, so the lock is held briefly.
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel plus an
// unsubscribe func. Calling unsubscribe more than once is safe.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 8
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	b.next++
	id := b.next
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}
