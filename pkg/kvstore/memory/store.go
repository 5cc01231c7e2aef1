package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/chris/multicurrency-wallet/pkg/kvstore"
)

// watchBuffer is the per-watcher channel capacity.
const watchBuffer = 64

// Shared is an in-process durable area shared by every handle opened from it,
// the way one browser origin shares its local storage between tabs.
type Shared struct {
	mu      sync.RWMutex
	data    map[string][]byte
	handles map[*Store]struct{}
}

// NewShared creates an empty shared area.
func NewShared() *Shared {
	return &Shared{
		data:    make(map[string][]byte),
		handles: make(map[*Store]struct{}),
	}
}

// Open returns a new handle, i.e. a new execution context over the shared data.
func (sh *Shared) Open() *Store {
	s := &Store{shared: sh, watchers: make(map[*watch]struct{})}
	sh.mu.Lock()
	sh.handles[s] = struct{}{}
	sh.mu.Unlock()
	return s
}

// Corrupt writes raw bytes under key without notifying anyone.
// It simulates an out-of-band edit of the durable data.
func (sh *Shared) Corrupt(key string, raw []byte) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.data[key] = append([]byte(nil), raw...)
}

var (
	_ kvstore.KVStore = (*Store)(nil)
	_ kvstore.Watcher = (*Store)(nil)
	_ kvstore.Lister  = (*Store)(nil)
)

// Store is one handle over a Shared area.
type Store struct {
	shared *Shared

	mu       sync.RWMutex
	watchers map[*watch]struct{}
	closed   bool
}

type watch struct {
	ctx context.Context
	ch  chan kvstore.Change
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if s.isClosed() {
		return nil, kvstore.ErrClosed
	}

	s.shared.mu.RLock()
	defer s.shared.mu.RUnlock()

	if val, ok := s.shared.data[key]; ok {
		// return a copy to prevent modification of stored data
		cp := make([]byte, len(val))
		copy(cp, val)
		return cp, nil
	}
	return nil, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if s.isClosed() {
		return kvstore.ErrClosed
	}

	cp := make([]byte, len(value))
	copy(cp, value)

	s.shared.mu.Lock()
	s.shared.data[key] = cp
	targets := make([]*Store, 0, len(s.shared.handles))
	for h := range s.shared.handles {
		if h != s {
			targets = append(targets, h)
		}
	}
	s.shared.mu.Unlock()

	for _, h := range targets {
		h.deliver(kvstore.Change{Key: key, Value: cp})
	}
	return nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.shared.mu.RLock()
	defer s.shared.mu.RUnlock()

	keys := make([]string, 0, len(s.shared.data))
	for k := range s.shared.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Watch reports writes made through other handles of the same Shared area.
func (s *Store) Watch(ctx context.Context) (<-chan kvstore.Change, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, kvstore.ErrClosed
	}
	w := &watch{ctx: ctx, ch: make(chan kvstore.Change, watchBuffer)}
	s.watchers[w] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.watchers, w)
		s.mu.Unlock()
		close(w.ch)
	}()

	return w.ch, nil
}

func (s *Store) deliver(c kvstore.Change) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for w := range s.watchers {
		val := make([]byte, len(c.Value))
		copy(val, c.Value)
		select {
		case w.ch <- kvstore.Change{Key: c.Key, Value: val}:
		case <-w.ctx.Done():
		}
	}
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Close detaches the handle from the shared area. The data stays.
func (s *Store) Close() error {
	s.shared.mu.Lock()
	delete(s.shared.handles, s)
	s.shared.mu.Unlock()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
