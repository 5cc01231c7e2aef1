package kvstore

import (
	"context"
	"errors"
	"time"
)

// KVStore is a durable byte-oriented key-value store.
// Each handle represents one execution context (a browser tab, a process).
type KVStore interface {
	// Get retrieves the value stored under key. Returns nil, nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the whole value stored under key. Implementations must not leave a
	// partially written value behind.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the handle.
	Close() error
}

// Change is a durable write observed by a Watcher.
type Change struct {
	Key string
	// Value is nil when the key was removed out-of-band.
	Value []byte
}

// Watcher is implemented by stores that can report writes made by other execution contexts.
// Writes made through the watching handle itself are never reported back to it.
type Watcher interface {
	// Watch returns a channel of changes that is closed once ctx is done.
	Watch(ctx context.Context) (<-chan Change, error)
}

// Polled is implemented by watchers that only notice remote writes once per interval.
// Their in-memory replicas may lag the durable value, so updates must start from a fresh read.
type Polled interface {
	PollInterval() time.Duration
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

// ErrClosed is returned by operations on a closed handle.
var ErrClosed = errors.New("kvstore: store is closed")
