package websockets

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	frames   []string
	writeErr error
	closed   bool
	deadline time.Time
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return c.writeErr
	}
	if messageType != websocket.TextMessage {
		return errors.New("unexpected frame type")
	}
	c.frames = append(c.frames, string(data))
	return nil
}

func (c *fakeConn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = t
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) Frames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.frames...)
}

func (c *fakeConn) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// stuckConn never finishes a write until it is closed, like a peer that stopped reading.
type stuckConn struct {
	closed chan struct{}
	once   sync.Once
}

func newStuckConn() *stuckConn {
	return &stuckConn{closed: make(chan struct{})}
}

func (c *stuckConn) WriteMessage(messageType int, data []byte) error {
	<-c.closed
	return errors.New("use of closed connection")
}

func (c *stuckConn) SetWriteDeadline(t time.Time) error { return nil }

func (c *stuckConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *stuckConn) Closed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// timeoutConn honours the write deadline by failing once it passes.
type timeoutConn struct {
	stuckConn
	mu       sync.Mutex
	deadline time.Time
}

func (c *timeoutConn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = t
	return nil
}

func (c *timeoutConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	wait := time.Until(c.deadline)
	c.mu.Unlock()
	select {
	case <-time.After(wait):
		return errors.New("i/o timeout")
	case <-c.closed:
		return errors.New("use of closed connection")
	}
}

func TestHubPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		hub := NewHub(nil)
		a, b := &fakeConn{}, &fakeConn{}
		require.NoError(t, hub.AddConnection(ctx, "a", a))
		require.NoError(t, hub.AddConnection(ctx, "b", b))

		err := hub.Publish(ctx, Message{
			Type:    MessageTypeStorageChange,
			Payload: StorageChangePayload{Key: "financiera-language", Value: "fr"},
		})

		assert.NoError(t, err)
		want := []string{`{"type":"storageChange","payload":{"key":"financiera-language","value":"fr"}}`}
		assert.Eventually(t, func() bool { return assert.ObjectsAreEqual(want, a.Frames()) }, time.Second, 5*time.Millisecond)
		assert.Eventually(t, func() bool { return assert.ObjectsAreEqual(want, b.Frames()) }, time.Second, 5*time.Millisecond)

		a.mu.Lock()
		defer a.mu.Unlock()
		assert.WithinDuration(t, time.Now().Add(writeWait), a.deadline, time.Second)
	})

	t.Run("Stale Connection Is Dropped", func(t *testing.T) {
		hub := NewHub(nil)
		gone := &fakeConn{writeErr: errors.New("broken pipe")}
		live := &fakeConn{}
		require.NoError(t, hub.AddConnection(ctx, "gone", gone))
		require.NoError(t, hub.AddConnection(ctx, "live", live))

		assert.NoError(t, hub.Publish(ctx, Message{Type: MessageTypeToast, Payload: "hi"}))

		assert.Eventually(t, func() bool { return hub.Len() == 1 && gone.Closed() }, time.Second, 5*time.Millisecond)
		assert.Eventually(t, func() bool { return len(live.Frames()) == 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("Stuck Connection Does Not Block Others", func(t *testing.T) {
		hub := NewHub(nil)
		stuck := newStuckConn()
		live := &fakeConn{}
		require.NoError(t, hub.AddConnection(ctx, "stuck", stuck))
		require.NoError(t, hub.AddConnection(ctx, "live", live))

		// One frame is held by the stuck writer, the rest fill its queue until it overflows.
		total := sendBuffer + 2
		for i := 1; i <= total; i++ {
			done := make(chan error, 1)
			go func() { done <- hub.Publish(ctx, Message{Type: MessageTypeToast, Payload: i}) }()
			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatalf("publish %d blocked on a stuck connection", i)
			}
			require.Eventually(t, func() bool { return len(live.Frames()) == i }, time.Second, time.Millisecond)
		}

		assert.True(t, stuck.Closed())
		assert.Equal(t, 1, hub.Len())
	})

	t.Run("Write Deadline Drops Connection", func(t *testing.T) {
		hub := NewHub(nil)
		hub.writeWait = 20 * time.Millisecond
		slow := &timeoutConn{stuckConn: stuckConn{closed: make(chan struct{})}}
		require.NoError(t, hub.AddConnection(ctx, "slow", slow))

		require.NoError(t, hub.Publish(ctx, Message{Type: MessageTypeToast, Payload: "hi"}))

		assert.Eventually(t, func() bool { return hub.Len() == 0 && slow.Closed() }, time.Second, 5*time.Millisecond)
	})

	t.Run("Marshal Error", func(t *testing.T) {
		hub := NewHub(nil)
		err := hub.Publish(ctx, Message{Type: MessageTypeToast, Payload: make(chan int)})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal message")
	})
}

func TestHubConnections(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(nil)

	require.NoError(t, hub.AddConnection(ctx, "a", &fakeConn{}))
	assert.Error(t, hub.AddConnection(ctx, "a", &fakeConn{}))
	assert.Equal(t, 1, hub.Len())

	assert.NoError(t, hub.RemoveConnection(ctx, "a"))
	assert.NoError(t, hub.RemoveConnection(ctx, "a"))
	assert.Equal(t, 0, hub.Len())

	t.Run("Remove Leaves Connection Open", func(t *testing.T) {
		gone := &fakeConn{writeErr: errors.New("broken pipe")}
		require.NoError(t, hub.AddConnection(ctx, "b", gone))
		require.NoError(t, hub.RemoveConnection(ctx, "b"))

		fresh := &fakeConn{}
		require.NoError(t, hub.AddConnection(ctx, "b", fresh))
		require.NoError(t, hub.Publish(ctx, Message{Type: MessageTypeToast, Payload: "hi"}))

		assert.Eventually(t, func() bool { return len(fresh.Frames()) == 1 }, time.Second, 5*time.Millisecond)
		assert.Equal(t, 1, hub.Len())
		assert.False(t, gone.Closed())
	})
}
