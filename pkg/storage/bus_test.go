package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus(t *testing.T) {
	t.Run("Publish Without Subscribers", func(t *testing.T) {
		b := NewBus()
		assert.Equal(t, 0, b.Publish(Event{Key: "k"}))
	})

	t.Run("Delivers Only Matching Key", func(t *testing.T) {
		b := NewBus()
		var got []string
		b.Subscribe("a", func(e Event) { got = append(got, "a:"+string(e.Raw)) })
		b.Subscribe("b", func(e Event) { got = append(got, "b:"+string(e.Raw)) })

		assert.Equal(t, 1, b.Publish(Event{Key: "a", Raw: []byte("1")}))
		assert.Equal(t, []string{"a:1"}, got)
	})

	t.Run("Cancel Is Idempotent", func(t *testing.T) {
		b := NewBus()
		cancel := b.Subscribe("k", func(Event) {})
		b.Subscribe("k", func(Event) {})

		cancel()
		cancel()
		assert.Equal(t, 1, b.Publish(Event{Key: "k"}))
	})

	t.Run("Handler May Publish", func(t *testing.T) {
		b := NewBus()
		var inner int
		b.Subscribe("outer", func(Event) { b.Publish(Event{Key: "inner"}) })
		b.Subscribe("inner", func(Event) { inner++ })

		b.Publish(Event{Key: "outer"})
		assert.Equal(t, 1, inner)
	})
}
