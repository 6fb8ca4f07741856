package notify

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeRoundtrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	received := make(chan Message, 1)
	err := bridge.Subscribe(context.Background(), "notify.success", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(context.Background(), Message{
		Topic:    "notify.success",
		SellerID: "seller123",
		Payload:  []byte(`{"hello":"world"}`),
		Metadata: map[string]string{"source": "test"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "notify.success", msg.Topic)
		assert.Equal(t, "seller123", msg.SellerID)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
		assert.Equal(t, "test", msg.Metadata["source"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestBridgeTopicIsolation(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	var mu sync.Mutex
	var errorsSeen []Message
	err := bridge.Subscribe(context.Background(), "notify.error", func(ctx context.Context, msg Message) error {
		mu.Lock()
		errorsSeen = append(errorsSeen, msg)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	success := make(chan Message, 1)
	err = bridge.Subscribe(context.Background(), "notify.success", func(ctx context.Context, msg Message) error {
		success <- msg
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(context.Background(), Message{
		Topic:   "notify.success",
		Payload: []byte(`{}`),
	}))

	select {
	case <-success:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, errorsSeen, "error subscribers must not see success notices")
}

func TestBusNotifier(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	received := make(chan Message, 1)
	err := bridge.Subscribe(context.Background(), Topic(domain.NoticeWarning), func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	notifier := NewBusNotifier(bridge, "seller123")
	err = notifier.Notify(context.Background(), domain.Notice{
		Level: domain.NoticeWarning,
		Text:  "Showing cached stats",
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "seller123", msg.SellerID)

		var notice domain.Notice
		require.NoError(t, json.Unmarshal(msg.Payload, &notice))
		assert.Equal(t, domain.NoticeWarning, notice.Level)
		assert.Equal(t, "Showing cached stats", notice.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notice")
	}
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "notify.success", Topic(domain.NoticeSuccess))
	assert.Equal(t, "notify.warning", Topic(domain.NoticeWarning))
	assert.Equal(t, "notify.error", Topic(domain.NoticeError))
}
