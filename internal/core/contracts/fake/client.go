// Package fake provides an in-memory contracts.Client for tests.
package fake

import (
	"context"
	"errors"
	"sync"
	"tradechat/internal/core/domain"
)

var ErrClosed = errors.New("fake client closed")

type Client struct {
	mu       sync.Mutex
	token    string
	userID   int64
	roomID   int64
	bound    bool
	closed   bool
	rejected bool
	reason   string
	sent     [][]byte
	// SendErr, when set, fails every Send without closing the client.
	SendErr error
}

func NewClient(token string) *Client {
	return &Client{token: token}
}

func (c *Client) UserID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

func (c *Client) RoomID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomID
}

func (c *Client) Token() string { return c.token }

func (c *Client) Bind(userID, roomID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bound {
		return domain.ErrAlreadyBound
	}
	c.userID, c.roomID, c.bound = userID, roomID, true
	return nil
}

func (c *Client) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

func (c *Client) Send(_ context.Context, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.SendErr != nil {
		return c.SendErr
	}
	c.sent = append(c.sent, data)
	return nil
}

func (c *Client) Reject(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed, c.rejected, c.reason = true, true, reason
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Rejected reports whether the client was closed for a policy violation.
func (c *Client) Rejected() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason, c.rejected
}

func (c *Client) Sent() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]byte, len(c.sent))
	copy(out, c.sent)
	return out
}
