package pubsub_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/oakmere/gatehouse/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridgeRoundTrip(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var received []pubsub.Message
	done := make(chan struct{})

	err := bridge.Subscribe(ctx, "auth.login.state", func(ctx context.Context, msg pubsub.Message) error {
		mu.Lock()
		received = append(received, msg)
		mu.Unlock()
		close(done)
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, pubsub.Message{
		Topic:    "auth.login.state",
		Form:     "login",
		Payload:  []byte(`{"phase":"submitting"}`),
		Metadata: map[string]string{"phase": "submitting"},
	})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot delivery")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "login", received[0].Form)
	assert.Equal(t, "auth.login.state", received[0].Topic)
	assert.JSONEq(t, `{"phase":"submitting"}`, string(received[0].Payload))
	assert.Equal(t, "submitting", received[0].Metadata["phase"])
}
