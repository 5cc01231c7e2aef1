package storage

import (
	"context"
	"sync"
)

// Cell is a live, typed replica of one stored key. Every cell for the same key is an
// independent copy kept consistent through the store's bus.
type Cell[T any] struct {
	store *Store
	key   string
	id    uint64

	mu    sync.RWMutex
	value T
	seq   uint64
	subs  map[uint64]func(T)
	next  uint64

	unsubscribe func()
}

// NewCell reads key from the store, falling back to def, and starts following changes.
// def is held in memory as the initial value but is not written until Set or Update.
func NewCell[T any](ctx context.Context, s *Store, key string, def T) *Cell[T] {
	c := &Cell[T]{
		store: s,
		key:   key,
		id:    s.cellID.Add(1),
		subs:  make(map[uint64]func(T)),
	}
	c.value = def
	c.unsubscribe = s.bus.Subscribe(key, c.receive)

	initial := Get(ctx, s, key, def)
	c.mu.Lock()
	// a change delivered while we were reading is at least as new as the read
	if c.seq == 0 {
		c.value = initial
	}
	c.mu.Unlock()

	return c
}

// Key returns the storage key the cell follows.
func (c *Cell[T]) Key() string {
	return c.key
}

// Get returns the in-memory value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the value. See Update.
func (c *Cell[T]) Set(ctx context.Context, v T) {
	c.update(ctx, func(T) T { return v }, false)
}

// Update computes the next value from the current in-memory one, stores it, writes it to
// the backend and notifies every cell of the key in this context, this one included.
// It always notifies, even when the value did not change.
//
// When the backend cannot push remote writes promptly, fn is applied to the durable value
// instead, so writes from other execution contexts are not overwritten with a stale copy.
//
// fn must be pure: it runs under the store's write lock and must not write to the store.
//
// If the value cannot be encoded or written the failure is reported, the cell keeps the new
// value and only its own subscribers are told.
func (c *Cell[T]) Update(ctx context.Context, fn func(T) T) {
	c.update(ctx, fn, c.store.freshUpdates)
}

func (c *Cell[T]) update(ctx context.Context, fn func(T) T, fresh bool) {
	s := c.store

	s.writeMu.Lock()
	current := c.Get()
	if fresh {
		if v, ok := load[T](ctx, s, c.key); ok {
			current = v
		}
	}
	next := fn(current)
	seq := s.seq.Add(1)
	c.mu.Lock()
	c.value = next
	c.seq = seq
	c.mu.Unlock()
	raw, ok := s.persist(ctx, c.key, next)
	s.writeMu.Unlock()

	if !ok {
		c.notify(next)
		return
	}
	s.bus.Publish(Event{Key: c.key, Raw: raw, Seq: seq, Source: c.id})
}

// Subscribe registers fn to run after every change of the cell's value.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	c.next++
	id := c.next
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Close stops following changes and drops all subscribers.
func (c *Cell[T]) Close() {
	c.unsubscribe()
	c.mu.Lock()
	c.subs = make(map[uint64]func(T))
	c.mu.Unlock()
}

func (c *Cell[T]) receive(e Event) {
	if e.Source == c.id {
		c.mu.RLock()
		current, v := e.Seq == c.seq, c.value
		c.mu.RUnlock()
		// a newer local write will notify on its own
		if current {
			c.notify(v)
		}
		return
	}

	var next T
	if err := c.store.codec.Unmarshal(e.Raw, &next); err != nil {
		c.store.report(readError("notify", c.key, err))
		return
	}

	c.mu.Lock()
	if !e.Remote {
		if e.Seq < c.seq {
			c.mu.Unlock()
			return
		}
		c.seq = e.Seq
	}
	c.value = next
	c.mu.Unlock()

	c.notify(next)
}

func (c *Cell[T]) notify(v T) {
	c.mu.RLock()
	subs := make([]func(T), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(v)
	}
}
