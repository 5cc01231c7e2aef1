package websockets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/puzpuzpuz/xsync/v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// sendBuffer is how many frames a client may fall behind before it is dropped.
	sendBuffer = 64
	writeWait  = 10 * time.Second
)

// client owns the only writer goroutine of its connection.
type client struct {
	conn Conn
	send chan []byte

	done chan struct{}
	once sync.Once
}

func (c *client) stop() {
	c.once.Do(func() { close(c.done) })
}

// Hub keeps the open connections of this process and broadcasts to them.
type Hub struct {
	clients   *xsync.MapOf[string, *client]
	logger    *slog.Logger
	writeWait time.Duration
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:   xsync.NewMapOf[string, *client](),
		logger:    logger,
		writeWait: writeWait,
	}
}

// Make sure we conform to the interfaces
var (
	_ Publisher         = (*Hub)(nil)
	_ ConnectionManager = (*Hub)(nil)
)

// AddConnection registers conn under connectionID and starts its writer.
func (h *Hub) AddConnection(ctx context.Context, connectionID string, conn Conn) error {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	if _, loaded := h.clients.LoadOrStore(connectionID, c); loaded {
		return fmt.Errorf("connection %s already registered", connectionID)
	}
	go h.writePump(connectionID, c)
	return nil
}

// RemoveConnection forgets connectionID and stops its writer. The connection itself
// belongs to the caller. Removing an unknown connection is not an error.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	if c, ok := h.clients.LoadAndDelete(connectionID); ok {
		c.stop()
	}
	return nil
}

// Len returns the number of open connections.
func (h *Hub) Len() int {
	return h.clients.Size()
}

// Publish queues a message for every connected client without waiting for any of
// them. Clients whose queue is full are closed and dropped.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.clients.Range(func(connectionID string, c *client) bool {
		select {
		case c.send <- payload:
		case <-c.done:
		default:
			h.drop(connectionID, c, "slow connection found, deleting", nil)
		}
		return true
	})

	return nil
}

func (h *Hub) writePump(connectionID string, c *client) {
	for {
		select {
		case <-c.done:
			return
		case payload := <-c.send:
			err := c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
			if err == nil {
				err = c.conn.WriteMessage(websocket.TextMessage, payload)
			}
			if err != nil {
				h.drop(connectionID, c, "stale connection found, deleting", err)
				return
			}
		}
	}
}

// drop removes c if it is still registered under connectionID and closes its connection.
func (h *Hub) drop(connectionID string, c *client, msg string, err error) {
	h.clients.Compute(connectionID, func(old *client, loaded bool) (*client, bool) {
		return old, !loaded || old == c
	})
	c.stop()
	h.logger.Info(msg, "connectionId", connectionID, "error", err)
	c.conn.Close()
}
