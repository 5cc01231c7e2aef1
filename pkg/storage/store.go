package storage

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/chris/multicurrency-wallet/pkg/kvstore"
	"github.com/google/uuid"
)

// Store is one execution context over a durable key-value backend. It keeps every live
// Cell of the context consistent with the backend and with each other.
type Store struct {
	ID string

	backend kvstore.KVStore
	bus     *Bus
	codec   Codec
	logger  *slog.Logger
	onError func(error)

	// freshUpdates makes cells read the durable value before applying an updater, for
	// backends whose remote writes arrive late or never.
	freshUpdates bool

	// writeMu serializes local writes the way a single event loop would.
	writeMu sync.Mutex
	seq     atomic.Uint64
	cellID  atomic.Uint64

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report storage failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithCodec replaces the JSON codec.
func WithCodec(c Codec) Option {
	return func(s *Store) { s.codec = c }
}

// WithErrorHandler registers a hook that receives every reported *KeyError.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Store) { s.onError = fn }
}

// New creates a Store over backend. If the backend implements kvstore.Watcher, changes
// written by other execution contexts are applied to this context's cells until Close.
func New(ctx context.Context, backend kvstore.KVStore, opts ...Option) (*Store, error) {
	s := &Store{
		ID:      uuid.New().String(),
		backend: backend,
		bus:     NewBus(),
		codec:   JSON,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("store_id", s.ID)

	watchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	w, watched := backend.(kvstore.Watcher)
	_, polled := backend.(kvstore.Polled)
	s.freshUpdates = !watched || polled

	if watched {
		changes, err := w.Watch(watchCtx)
		if err != nil {
			cancel()
			return nil, err
		}
		s.wg.Add(1)
		go s.watch(changes)
	}

	return s, nil
}

func (s *Store) watch(changes <-chan kvstore.Change) {
	defer s.wg.Done()
	for c := range changes {
		// removals are outside the store's lifecycle; keep the current value
		if c.Value == nil {
			continue
		}
		s.logger.Debug("remote change received", "key", c.Key)
		s.bus.Publish(Event{Key: c.Key, Raw: c.Value, Remote: true})
	}
}

// Backend returns the durable store this context writes to.
func (s *Store) Backend() kvstore.KVStore {
	return s.backend
}

// Bus returns the in-context notification bus.
func (s *Store) Bus() *Bus {
	return s.bus
}

// Close stops applying remote changes. The backend is left open.
func (s *Store) Close() error {
	s.cancel()
	s.wg.Wait()
	return nil
}

func (s *Store) report(err *KeyError) {
	s.logger.Error("storage failure", "op", err.Op, "key", err.Key, "error", err.Err)
	if s.onError != nil {
		s.onError(err)
	}
}

// read returns the raw bytes for key, or ok=false when the key is absent or unreadable.
func (s *Store) read(ctx context.Context, key string) ([]byte, bool) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		s.report(readError("get", key, err))
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	return raw, true
}

// persist encodes and writes v, returning the encoded bytes on success.
func (s *Store) persist(ctx context.Context, key string, v any) ([]byte, bool) {
	raw, err := s.codec.Marshal(v)
	if err != nil {
		s.report(writeError("encode", key, err))
		return nil, false
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		s.report(writeError("set", key, err))
		return nil, false
	}
	return raw, true
}

// Get returns the value stored under key, or def when nothing is stored or the stored
// value cannot be decoded. It never persists def.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	if v, ok := load[T](ctx, s, key); ok {
		return v
	}
	return def
}

// load decodes the value stored under key. ok is false when it is absent or unreadable.
func load[T any](ctx context.Context, s *Store, key string) (T, bool) {
	var v T
	raw, ok := s.read(ctx, key)
	if !ok {
		return v, false
	}
	if err := s.codec.Unmarshal(raw, &v); err != nil {
		s.report(readError("decode", key, err))
		return v, false
	}
	return v, true
}

// Set writes v under key and notifies every cell of this context watching key.
// Failures are reported, not returned.
func Set[T any](ctx context.Context, s *Store, key string, v T) {
	s.writeMu.Lock()
	seq := s.seq.Add(1)
	raw, ok := s.persist(ctx, key, v)
	s.writeMu.Unlock()

	if ok {
		s.bus.Publish(Event{Key: key, Raw: raw, Seq: seq})
	}
}

// Update applies fn to the stored value (or def) and writes the result like Set.
func Update[T any](ctx context.Context, s *Store, key string, def T, fn func(T) T) T {
	s.writeMu.Lock()
	next := fn(Get(ctx, s, key, def))
	seq := s.seq.Add(1)
	raw, ok := s.persist(ctx, key, next)
	s.writeMu.Unlock()

	if ok {
		s.bus.Publish(Event{Key: key, Raw: raw, Seq: seq})
	}
	return next
}
