package redis

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
	"tradechat/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*RedisMessageQueue, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRedisMessageQueue(log, client), client
}

func TestStreamNotifier_PublishesJSON(t *testing.T) {
	q, client := newTestQueue(t)
	n := NewStreamNotifier(q, "chat:notifications")
	note := domain.Notification{ID: "n-1", ChatRoomID: 3, MessageID: 101, SenderID: 7, Type: "TEXT", Preview: "hello"}

	require.NoError(t, n.Notify(context.Background(), note))

	entries, err := client.XRange(context.Background(), "chat:notifications", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	var got domain.Notification
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["data"].(string)), &got))
	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, note.MessageID, got.MessageID)
	assert.Equal(t, note.Preview, got.Preview)
}

func TestQueue_SubscribeDeliversAndAcks(t *testing.T) {
	q, client := newTestQueue(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []string
	done := make(chan error, 1)
	go func() {
		done <- q.SubscribeToStream(ctx, "s", "g", func(ctx context.Context, id string, data []byte) error {
			mu.Lock()
			got = append(got, string(data))
			mu.Unlock()
			if err := q.AcknowledgeMessage(ctx, "s", "g", id); err != nil {
				return err
			}
			return q.DeleteMessage(ctx, "s", id)
		})
	}()

	require.NoError(t, q.PublishToStream(context.Background(), "s", []byte("one")))
	require.NoError(t, q.PublishToStream(context.Background(), "s", []byte("two")))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"one", "two"}, got)

	n, err := client.XLen(context.Background(), "s").Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber did not stop after cancel")
	}
}
