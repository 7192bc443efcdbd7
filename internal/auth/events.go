package auth

import "sync"

// EventKind identifies an auth state change.
type EventKind string

// Auth event kinds.
const (
	EventLogin  EventKind = "login"
	EventLogout EventKind = "logout"
)

// Event is published after a login or logout so independent UI regions can
// refresh auth-dependent chrome.
type Event struct {
	Kind     EventKind
	Username string
}

// eventBuffer bounds how many undelivered events a subscriber can lag
// behind before further events to it are dropped.
const eventBuffer = 16

// Bus is an in-process broadcast channel for auth events. Publish delivers
// to every subscriber registered at publish time; there is no buffering or
// replay for late subscribers.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber. The returned cancel func removes
// the subscription and closes the channel; it is safe to call more than
// once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, eventBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every current subscriber. Publish never
// blocks: a subscriber that has lagged past its buffer misses the event
// instead of stalling publishers and other subscribers behind the lock.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
