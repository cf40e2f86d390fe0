package domain

import (
	"time"
)

// User represents the marketplace identity resolved from an access token.
type User struct {
	ID       int64
	Email    string
	Nickname string
}

// TokenClaims is what a verified access token vouches for.
type TokenClaims struct {
	UserID int64
	Email  string
}

// ChatRoom is the two-party (buyer, seller) context a connection is bound to.
type ChatRoom struct {
	ID        int64
	BuyerID   int64
	SellerID  int64
	ProductID int64
	CreatedAt time.Time
}

// HasParticipant reports whether userID is the buyer or the seller of the room.
func (r *ChatRoom) HasParticipant(userID int64) bool {
	return r.BuyerID == userID || r.SellerID == userID
}

// Counterpart returns the participant that is not userID.
func (r *ChatRoom) Counterpart(userID int64) int64 {
	if r.BuyerID == userID {
		return r.SellerID
	}
	return r.BuyerID
}

// Message represents a persisted chat entry
type Message struct {
	ID         int64
	ChatRoomID int64
	SenderID   int64
	Type       MessageType
	Content    string
	CreatedAt  time.Time
}

// Notification is handed to the push side channel after a message is persisted.
type Notification struct {
	ID             string    `json:"id"`
	ChatRoomID     int64     `json:"chat_room_id"`
	MessageID      int64     `json:"message_id"`
	SenderID       int64     `json:"sender_id"`
	SenderNickname string    `json:"sender_nickname"`
	Type           string    `json:"type"`
	Preview        string    `json:"preview"`
	CreatedAt      time.Time `json:"created_at"`
}

// Push is a notification resolved to the user who should receive it.
type Push struct {
	RecipientID  int64        `json:"recipient_id"`
	Notification Notification `json:"notification"`
}
