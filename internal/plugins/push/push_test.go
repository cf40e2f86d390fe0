package push

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"tradechat/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookPusher_PostsJSON(t *testing.T) {
	var got domain.Push
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewWebhookPusher(srv.URL, time.Second)
	push := domain.Push{RecipientID: 9, Notification: domain.Notification{ID: "n-1", ChatRoomID: 3, MessageID: 101, Preview: "hi"}}

	require.NoError(t, p.Push(context.Background(), push))
	assert.Equal(t, int64(9), got.RecipientID)
	assert.Equal(t, "n-1", got.Notification.ID)
}

func TestWebhookPusher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookPusher(srv.URL, time.Second).Push(context.Background(), domain.Push{})
	assert.ErrorContains(t, err, "502")
}

func TestLogPusher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPusher(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, p.Push(context.Background(), domain.Push{RecipientID: 9, Notification: domain.Notification{Preview: "hello"}}))
	assert.Contains(t, buf.String(), "user_id=9")
	assert.Contains(t, buf.String(), "preview=hello")
}
