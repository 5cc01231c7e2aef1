package badger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/kvstore"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
	"github.com/google/uuid"
)

// markerPrefix reserves a key range for subscription handshakes. Marker keys are
// never listed or forwarded.
var markerPrefix = []byte("\x00watch/")

const (
	markerEvery = 10 * time.Millisecond
	markerTTL   = time.Minute
)

// ErrTooManyHandles is returned when every origin tag byte is in use.
var ErrTooManyHandles = errors.New("badger: too many open handles")

// DB owns a badger database that can be shared by up to 255 handles, each one an
// execution context. Handles tag their writes with a UserMeta byte so that
// subscriptions can skip their own echoes.
type DB struct {
	db *badger.DB

	mu     sync.Mutex
	nextID byte
}

// Open opens the badger database at path. An empty path opens an in-memory database.
func Open(path string) (*DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}
	return &DB{db: db}, nil
}

// Handle returns a new execution context over the database.
func (d *DB) Handle() (*Store, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.nextID == 255 {
		return nil, ErrTooManyHandles
	}
	d.nextID++
	return &Store{db: d.db, origin: d.nextID}, nil
}

// Close closes the underlying database. Handles must not be used afterwards.
func (d *DB) Close() error {
	return d.db.Close()
}

var (
	_ kvstore.KVStore = (*Store)(nil)
	_ kvstore.Watcher = (*Store)(nil)
	_ kvstore.Lister  = (*Store)(nil)
)

// Store is one handle over a shared DB.
type Store struct {
	db     *badger.DB
	origin byte
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var valCopy []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		valCopy, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from badger: %w", key, err)
	}
	return valCopy, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), value).WithMeta(s.origin))
	})
	if err != nil {
		return fmt.Errorf("failed to write %q to badger: %w", key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			if bytes.HasPrefix(key, markerPrefix) {
				continue
			}
			keys = append(keys, string(key))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list badger keys: %w", err)
	}
	return keys, nil
}

// Watch subscribes to every write in the database and forwards those made by other
// handles. It returns once the subscription is live: any write that completes after
// Watch returns is delivered.
func (s *Store) Watch(ctx context.Context) (<-chan kvstore.Change, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	changes := make(chan kvstore.Change)
	live := make(chan struct{})
	stopped := make(chan error, 1)
	marker := append(append([]byte{}, markerPrefix...), []byte(fmt.Sprintf("%d/%s", s.origin, uuid.NewString()))...)

	var once sync.Once
	cb := func(list *badger.KVList) error {
		for _, kv := range list.Kv {
			if bytes.HasPrefix(kv.Key, markerPrefix) {
				if bytes.Equal(kv.Key, marker) {
					once.Do(func() { close(live) })
				}
				continue
			}
			// Not yet live: the caller has not read the durable state, so it will see this write anyway.
			select {
			case <-live:
			default:
				continue
			}
			if len(kv.UserMeta) > 0 && kv.UserMeta[0] == s.origin {
				continue
			}
			change := kvstore.Change{Key: string(kv.Key), Value: kv.Value}
			select {
			case changes <- change:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	}

	go func() {
		defer close(changes)
		err := s.db.Subscribe(ctx, cb, []pb.Match{{Prefix: []byte{}}})
		stopped <- err
		if err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("badger subscription stopped", "error", err)
		}
	}()

	// Subscribe registers asynchronously, so keep writing the marker until it echoes back.
	ticker := time.NewTicker(markerEvery)
	defer ticker.Stop()
	for {
		if err := s.writeMarker(marker); err != nil {
			return nil, err
		}
		select {
		case <-live:
			return changes, nil
		case err := <-stopped:
			if err == nil {
				err = errors.New("subscription ended")
			}
			return nil, fmt.Errorf("failed to subscribe to badger: %w", err)
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Store) writeMarker(key []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key, nil).WithTTL(markerTTL))
	})
	if err != nil {
		return fmt.Errorf("failed to write badger watch marker: %w", err)
	}
	return nil
}

// Close is a no-op; the DB owns the database.
func (s *Store) Close() error {
	return nil
}
