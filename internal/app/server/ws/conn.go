package ws

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const closeWriteWait = time.Second

type WebSocket struct {
	*websocket.Conn
	ctx          context.Context
	cancel       context.CancelFunc
	writeTimeout time.Duration
}

func NewWebSocket(parent context.Context, conn *websocket.Conn, writeTimeout time.Duration) *WebSocket {
	ctx, cancel := context.WithCancel(parent)
	return &WebSocket{Conn: conn, ctx: ctx, cancel: cancel, writeTimeout: writeTimeout}
}

func (w *WebSocket) WriteMessage(data []byte) error {
	w.Conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	return w.Conn.WriteMessage(websocket.TextMessage, data)
}

// WriteClose sends a close frame. Safe to call alongside WriteMessage.
func (w *WebSocket) WriteClose(code int, reason string) error {
	// control frame payloads are capped at 125 bytes, 2 of which hold the code
	if len(reason) > 123 {
		reason = reason[:123]
	}
	msg := websocket.FormatCloseMessage(code, reason)
	return w.Conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait))
}

// ReadLoop hands frames to onMsg one at a time, in arrival order, until the
// connection fails or is closed.
func (w *WebSocket) ReadLoop(log *slog.Logger, limit int64, onMsg func([]byte)) {
	// Ensure cleanup happens when the loop breaks
	defer w.Close()
	// Protects against memory exhaustion
	w.Conn.SetReadLimit(limit)
	for {
		_, data, err := w.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.ClosePolicyViolation) {
				log.Debug("ws - read loop - unexpected close", "err", err)
			}
			return
		}
		if len(data) > 0 {
			onMsg(data)
		}
	}
}

func (w *WebSocket) Close() {
	w.cancel()
	_ = w.Conn.Close()
}
