package events

import (
	"log/slog"
	"sync"
	"time"
)

// Kind names what changed.
type Kind string

const (
	BlacklistChanged Kind = "blacklist.changed"
	HistoryChanged   Kind = "history.changed"
)

// Event is published after a store mutation has been committed.
type Event struct {
	Kind Kind      `json:"kind"`
	At   time.Time `json:"at"`
}

const subscriberBuffer = 16

// Broker fans events out to subscribers. A subscriber whose buffer is full
// misses the event; publishers never block.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
	now  func() time.Time
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan Event]struct{}),
		now:  time.Now,
	}
}

// Publish delivers an event of kind k to every subscriber.
func (b *Broker) Publish(k Kind) {
	ev := Event{Kind: k, At: b.now().UTC()}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
			slog.Warn("dropping event for slow subscriber", "kind", k)
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel func unregisters
// it and closes the channel; it is safe to call more than once.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers returns the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
