package domain

//go:generate mockgen -source=interfaces.go -destination=mock/repository.go -package=mock

import (
	"context"
)

// UserRepository is the identity store
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// ChatRoomRepository is the room store; rooms are created by the marketplace, never here.
type ChatRoomRepository interface {
	GetChatRoomByID(ctx context.Context, id int64) (*ChatRoom, error)
}

// MessageRepository durably stores chat messages
type MessageRepository interface {
	// SaveMessage inserts msg and returns it with the assigned id and timestamp.
	SaveMessage(ctx context.Context, msg *Message) (*Message, error)
}
