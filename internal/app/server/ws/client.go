package ws

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"tradechat/internal/core/domain"

	"github.com/gorilla/websocket"
)

var (
	ErrClientClosed = errors.New("client closed")
	ErrSendBlocked  = errors.New("client send buffer full")
)

// RuntimeClient is a registered websocket connection. Writes go through a
// single write loop; reads happen in the handler goroutine.
type RuntimeClient struct {
	ctx    context.Context
	cancel context.CancelFunc
	ws     *WebSocket
	token  string
	mu     sync.RWMutex
	userID int64
	roomID int64
	bound  bool
	open   atomic.Bool
	out    chan []byte
	once   sync.Once
}

func NewClient(
	parent context.Context,
	ws *WebSocket,
	token string,
	buffer int,
) *RuntimeClient {
	ctx, cancel := context.WithCancel(parent)
	c := &RuntimeClient{
		ctx:    ctx,
		cancel: cancel,
		ws:     ws,
		token:  token,
		out:    make(chan []byte, buffer),
	}
	c.open.Store(true)
	go c.writeLoop()
	return c
}

func (c *RuntimeClient) Token() string { return c.token }
func (c *RuntimeClient) IsOpen() bool  { return c.open.Load() }

func (c *RuntimeClient) UserID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}

func (c *RuntimeClient) RoomID() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomID
}

func (c *RuntimeClient) Bind(userID, roomID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bound {
		return domain.ErrAlreadyBound
	}
	c.userID, c.roomID, c.bound = userID, roomID, true
	return nil
}

// Send queues data for the write loop. A full queue drops the message.
func (c *RuntimeClient) Send(ctx context.Context, data []byte) error {
	if !c.IsOpen() {
		return ErrClientClosed
	}
	select {
	case c.out <- data:
		return nil
	case <-c.ctx.Done():
		return ErrClientClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrSendBlocked
	}
}

func (c *RuntimeClient) Reject(reason string) {
	c.shutdown(func() {
		_ = c.ws.WriteClose(websocket.ClosePolicyViolation, reason)
	})
}

func (c *RuntimeClient) Close() {
	c.shutdown(nil)
}

func (c *RuntimeClient) shutdown(beforeClose func()) {
	c.once.Do(func() {
		c.open.Store(false)
		c.cancel()
		if beforeClose != nil {
			beforeClose()
		}
		c.ws.Close()
	})
}

func (c *RuntimeClient) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.out:
			if err := c.ws.WriteMessage(data); err != nil {
				c.Close()
				return
			}
		}
	}
}
