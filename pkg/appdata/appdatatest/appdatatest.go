// Package appdatatest builds application state for tests.
package appdatatest

import (
	"context"
	"testing"
	"time"

	"github.com/chris/multicurrency-wallet/pkg/appdata"
	"github.com/chris/multicurrency-wallet/pkg/kvstore/memory"
	"github.com/chris/multicurrency-wallet/pkg/seed"
	"github.com/chris/multicurrency-wallet/pkg/storage"
)

// Now is the clock every state built here reads.
var Now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// New returns seeded state over a fresh in-memory area. It is closed when the test ends.
func New(t testing.TB, opts ...appdata.Option) *appdata.State {
	t.Helper()
	return Open(t, memory.NewShared(), opts...)
}

// Open returns seeded state over a new handle of shared, i.e. a new execution context.
func Open(t testing.TB, shared *memory.Shared, opts ...appdata.Option) *appdata.State {
	t.Helper()

	backend := shared.Open()
	store, err := storage.New(context.Background(), backend)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	opts = append([]appdata.Option{appdata.WithClock(func() time.Time { return Now })}, opts...)
	s := appdata.New(context.Background(), store, seed.MustLoad(Now), opts...)
	t.Cleanup(func() {
		s.Close()
		store.Close()
		backend.Close()
	})
	return s
}
