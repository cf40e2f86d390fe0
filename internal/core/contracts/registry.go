package contracts

import (
	"context"
)

// Registry holds at most one live connection per user id. Implementations
// synchronize internally; callers never lock.
type Registry interface {
	// Register inserts or replaces the entry for userID and returns the
	// superseded client, if any. The superseded client is not closed.
	Register(userID int64, c Client) Client
	// UnregisterByConnection removes whichever entry currently holds c.
	UnregisterByConnection(c Client) bool
	// AllOpen returns a snapshot of registered clients that are still open.
	AllOpen() []Client
}

// Client is a single websocket connection as seen by the chat core.
type Client interface {
	UserID() int64
	RoomID() int64
	// Token is the bearer token presented at handshake.
	Token() string
	// Bind attaches the authenticated user and room. It succeeds once.
	Bind(userID, roomID int64) error
	IsOpen() bool
	Send(ctx context.Context, data []byte) error
	// Reject closes the connection with the policy violation close code.
	Reject(reason string)
	Close()
}
