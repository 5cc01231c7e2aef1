package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/chris/multicurrency-wallet/pkg/kvstore"
	"github.com/fsnotify/fsnotify"
)

const (
	fileExt    = ".json"
	tempPrefix = ".tmp-"
)

var (
	_ kvstore.KVStore = (*Store)(nil)
	_ kvstore.Watcher = (*Store)(nil)
	_ kvstore.Lister  = (*Store)(nil)
)

// Store keeps one file per key inside a directory. Several processes may open the
// same directory; each sees the others' writes through Watch.
type Store struct {
	dir string

	mu       sync.Mutex
	watching int
	// pending counts our own renames per key that the watcher has not seen yet.
	pending map[string]int
}

// NewStore opens (and creates if needed) the directory at dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Store{dir: dir, pending: make(map[string]int)}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileExt)
}

func keyFromPath(path string) (string, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, fileExt) {
		return "", false
	}
	key, err := url.PathUnescape(strings.TrimSuffix(name, fileExt))
	if err != nil {
		return "", false
	}
	return key, true
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, nil
}

// Set writes value to a temp file and renames it over the key's file.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	s.mu.Lock()
	tracked := s.watching > 0
	if tracked {
		s.pending[key]++
	}
	s.mu.Unlock()

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		if tracked {
			s.mu.Lock()
			s.pending[key]--
			s.mu.Unlock()
		}
		return fmt.Errorf("failed to replace %q: %w", key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list store directory: %w", err)
	}
	var keys []string
	for _, e := range entries {
		if key, ok := keyFromPath(e.Name()); ok && !e.IsDir() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Watch reports files replaced by other processes or handles. It relies on the rename in Set
// surfacing as a single create event for the key's file.
func (s *Store) Watch(ctx context.Context) (<-chan kvstore.Change, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(s.dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	s.mu.Lock()
	s.watching++
	s.mu.Unlock()

	changes := make(chan kvstore.Change)
	go func() {
		defer close(changes)
		defer w.Close()
		defer func() {
			s.mu.Lock()
			s.watching--
			if s.watching == 0 {
				s.pending = make(map[string]int)
			}
			s.mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				change, ok := s.translate(ctx, ev)
				if !ok {
					continue
				}
				select {
				case changes <- change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("file store watcher error", "dir", s.dir, "error", err)
			}
		}
	}()

	return changes, nil
}

func (s *Store) translate(ctx context.Context, ev fsnotify.Event) (kvstore.Change, bool) {
	key, ok := keyFromPath(ev.Name)
	if !ok {
		return kvstore.Change{}, false
	}

	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		return kvstore.Change{Key: key}, true
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return kvstore.Change{}, false
	}

	if ev.Has(fsnotify.Create) {
		s.mu.Lock()
		own := s.pending[key] > 0
		if own {
			s.pending[key]--
		}
		s.mu.Unlock()
		if own {
			return kvstore.Change{}, false
		}
	}

	data, err := s.Get(ctx, key)
	if err != nil || data == nil {
		return kvstore.Change{}, false
	}
	return kvstore.Change{Key: key, Value: data}, true
}

func (s *Store) Close() error {
	return nil
}
