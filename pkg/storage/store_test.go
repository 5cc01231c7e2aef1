package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/kvstore/memory"
	"github.com/chris/multicurrency-wallet/pkg/kvstore/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type preferences struct {
	ShowBalances    bool   `json:"showBalances"`
	DefaultCurrency string `json:"defaultCurrency"`
	Notifications   bool   `json:"notifications"`
	Language        string `json:"language"`
}

var defaultPreferences = preferences{
	ShowBalances:    true,
	DefaultCurrency: "USD",
	Notifications:   true,
	Language:        "es",
}

// unencodable fails to serialize.
type unencodable struct{}

func (unencodable) MarshalJSON() ([]byte, error) { return nil, errors.New("cannot encode") }

// errorRecorder collects reported failures.
type errorRecorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *errorRecorder) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *errorRecorder) all() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

func newTestStore(t *testing.T, shared *memory.Shared, opts ...Option) *Store {
	t.Helper()
	backend := shared.Open()
	s, err := New(context.Background(), backend, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
		backend.Close()
	})
	return s
}

func TestGetSet(t *testing.T) {
	ctx := context.Background()
	shared := memory.NewShared()
	s := newTestStore(t, shared)

	t.Run("Read After Write Ignores Default", func(t *testing.T) {
		Set(ctx, s, "k", 42)
		assert.Equal(t, 42, Get(ctx, s, "k", 0))
		assert.Equal(t, 42, Get(ctx, s, "k", -1))
	})

	t.Run("Missing Key Returns Default Without Persisting", func(t *testing.T) {
		assert.Equal(t, defaultPreferences, Get(ctx, s, "financiera-preferences", defaultPreferences))

		raw, err := s.Backend().Get(ctx, "financiera-preferences")
		assert.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("Get Is Idempotent", func(t *testing.T) {
		Set(ctx, s, "list", []string{"a", "b"})
		first := Get(ctx, s, "list", []string(nil))
		second := Get(ctx, s, "list", []string(nil))
		assert.Equal(t, first, second)
	})

	t.Run("Update Starts From Default", func(t *testing.T) {
		next := Update(ctx, s, "counter", 10, func(n int) int { return n + 1 })
		assert.Equal(t, 11, next)
		assert.Equal(t, 11, Get(ctx, s, "counter", 0))
	})
}

func TestGetMalformedStorage(t *testing.T) {
	ctx := context.Background()
	shared := memory.NewShared()
	rec := &errorRecorder{}
	s := newTestStore(t, shared, WithErrorHandler(rec.record))

	shared.Corrupt("financiera-preferences", []byte("{not json"))

	var got preferences
	assert.NotPanics(t, func() {
		got = Get(ctx, s, "financiera-preferences", defaultPreferences)
	})
	assert.Equal(t, defaultPreferences, got)

	errs := rec.all()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrRead)

	var keyErr *KeyError
	require.ErrorAs(t, errs[0], &keyErr)
	assert.Equal(t, "financiera-preferences", keyErr.Key)
	assert.Equal(t, "decode", keyErr.Op)
}

func TestGetBackendFailure(t *testing.T) {
	ctx := context.Background()
	backend := new(mocks.KVStore)
	backend.On("Get", mock.Anything, "k").Return(nil, errors.New("disk on fire"))

	rec := &errorRecorder{}
	s, err := New(ctx, backend, WithErrorHandler(rec.record))
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "fallback", Get(ctx, s, "k", "fallback"))
	require.Len(t, rec.all(), 1)
	assert.ErrorIs(t, rec.all()[0], ErrRead)
	backend.AssertExpectations(t)
}

func TestSetNotifiesCells(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, memory.NewShared())

	c := NewCell(ctx, s, "k", "initial")
	defer c.Close()

	var seen []string
	c.Subscribe(func(v string) { seen = append(seen, v) })

	Set(ctx, s, "k", "from store")
	assert.Equal(t, "from store", c.Get())
	assert.Equal(t, []string{"from store"}, seen)
}

func TestPropagationAcrossContexts(t *testing.T) {
	ctx := context.Background()
	shared := memory.NewShared()
	tabA := newTestStore(t, shared)
	tabB := newTestStore(t, shared)

	cellA := NewCell(ctx, tabA, "financiera-language", "es")
	cellB := NewCell(ctx, tabB, "financiera-language", "es")
	defer cellA.Close()
	defer cellB.Close()

	cellA.Set(ctx, "fr")

	assert.Equal(t, "fr", cellA.Get())
	assert.Eventually(t, func() bool { return cellB.Get() == "fr" }, time.Second, 5*time.Millisecond)

	cellB.Set(ctx, "de")
	assert.Eventually(t, func() bool { return cellA.Get() == "de" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "de", Get(ctx, tabA, "financiera-language", ""))
}

func TestCloseStopsRemoteChanges(t *testing.T) {
	ctx := context.Background()
	shared := memory.NewShared()
	tabA := newTestStore(t, shared)

	backendB := shared.Open()
	tabB, err := New(ctx, backendB)
	require.NoError(t, err)

	cellB := NewCell(ctx, tabB, "k", 1)
	require.NoError(t, tabB.Close())

	Set(ctx, tabA, "k", 2)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, cellB.Get())
	backendB.Close()
}
