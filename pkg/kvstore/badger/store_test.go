package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoreGetSet(t *testing.T) {
	ctx := context.Background()
	s, err := openTestDB(t).Handle()
	require.NoError(t, err)

	val, err := s.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set(ctx, "financiera-language", []byte(`"en"`)))
	val, err = s.Get(ctx, "financiera-language")
	assert.NoError(t, err)
	assert.Equal(t, `"en"`, string(val))

	keys, err := s.Keys(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"financiera-language"}, keys)
}

func TestStoreWatch(t *testing.T) {
	t.Run("Live On Return", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		db := openTestDB(t)
		a, err := db.Handle()
		require.NoError(t, err)
		b, err := db.Handle()
		require.NoError(t, err)

		changesA, err := a.Watch(ctx)
		require.NoError(t, err)
		changesB, err := b.Watch(ctx)
		require.NoError(t, err)

		// A single write straight after Watch returns must reach the other handle.
		require.NoError(t, a.Set(ctx, "k", []byte("v")))

		select {
		case c := <-changesB:
			assert.Equal(t, "k", c.Key)
			assert.Equal(t, "v", string(c.Value))
		case <-time.After(3 * time.Second):
			t.Fatal("change not delivered to the other handle")
		}

		select {
		case c := <-changesA:
			t.Fatalf("writer received its own change: %+v", c)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Markers Are Hidden", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		db := openTestDB(t)
		a, err := db.Handle()
		require.NoError(t, err)
		b, err := db.Handle()
		require.NoError(t, err)

		changesA, err := a.Watch(ctx)
		require.NoError(t, err)
		_, err = b.Watch(ctx)
		require.NoError(t, err)

		require.NoError(t, b.Set(ctx, "financiera-language", []byte(`"es"`)))
		select {
		case c := <-changesA:
			assert.Equal(t, "financiera-language", c.Key)
		case <-time.After(3 * time.Second):
			t.Fatal("change not delivered")
		}

		keys, err := a.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"financiera-language"}, keys)
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s, err := openTestDB(t).Handle()
		require.NoError(t, err)

		_, err = s.Watch(ctx)
		assert.Error(t, err)
	})
}

func TestHandleLimit(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 255; i++ {
		_, err := db.Handle()
		require.NoError(t, err)
	}
	_, err := db.Handle()
	assert.ErrorIs(t, err, ErrTooManyHandles)
}
