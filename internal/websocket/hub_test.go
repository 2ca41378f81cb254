package websocket

import (
	"context"
	"testing"
	"time"

	"ai-docqa-client/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastReachesRegisteredClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(logger.NewNopLogger())
	go hub.Run(ctx)

	a := &Client{Hub: hub, Send: make(chan []byte, 1)}
	b := &Client{Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- a
	hub.register <- b
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast([]byte(`{"type":"CORPUS_UPDATED"}`))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.Send:
			assert.JSONEq(t, `{"type":"CORPUS_UPDATED"}`, string(msg))
		case <-time.After(time.Second):
			t.Fatal("broadcast not delivered")
		}
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(logger.NewNopLogger())
	go hub.Run(ctx)

	slow := &Client{Hub: hub, Send: make(chan []byte)}
	hub.register <- slow
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast([]byte("x"))

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger.NewNopLogger())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := &Client{Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- c
	cancel()
	<-done

	_, open := <-c.Send
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientCount())
}
