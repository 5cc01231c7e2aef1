package storage

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// Event is a change notification for one key.
type Event struct {
	Key string
	// Raw is the serialized value.
	Raw []byte
	// Remote is true when the change came from another execution context.
	Remote bool
	// Seq orders writes made in this context. Zero for remote events.
	Seq uint64
	// Source identifies the cell that wrote the value. Zero for remote events.
	Source uint64
}

// Handler receives events published on a Bus.
type Handler func(Event)

// Bus is an in-process publish/subscribe channel keyed by storage key.
// Delivery is synchronous: Publish returns after every handler has run.
type Bus struct {
	topics *xsync.MapOf[string, *topic]
	nextID atomic.Uint64
}

type topic struct {
	mu       sync.RWMutex
	handlers map[uint64]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{topics: xsync.NewMapOf[string, *topic]()}
}

// Subscribe registers h for events on key and returns a function that removes it.
func (b *Bus) Subscribe(key string, h Handler) (cancel func()) {
	id := b.nextID.Add(1)
	t, _ := b.topics.LoadOrStore(key, &topic{handlers: make(map[uint64]Handler)})

	t.mu.Lock()
	t.handlers[id] = h
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.handlers, id)
			t.mu.Unlock()
		})
	}
}

// Publish delivers e to every handler subscribed to e.Key and returns how many there were.
// Handlers run outside the bus lock, so they may publish or subscribe themselves.
func (b *Bus) Publish(e Event) int {
	t, ok := b.topics.Load(e.Key)
	if !ok {
		return 0
	}

	t.mu.RLock()
	handlers := make([]Handler, 0, len(t.handlers))
	for _, h := range t.handlers {
		handlers = append(handlers, h)
	}
	t.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
	return len(handlers)
}
