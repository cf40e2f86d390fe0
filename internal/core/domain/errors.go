package domain

import "errors"

// Store level
var (
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidChatRoomID = errors.New("invalid chat room id")
	ErrChatRoomNotFound  = errors.New("chat room not found")
	ErrInvalidMessage    = errors.New("invalid message")
)

// Connection level. Every one of these closes the offending connection
// with a policy violation.
var (
	ErrMissingToken      = errors.New("missing or malformed bearer token")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnknownUser       = errors.New("unknown user")
	ErrInvalidRoomID     = errors.New("missing or non-numeric chat room id")
	ErrRoomNotFound      = errors.New("room not found")
	ErrNotAuthorized     = errors.New("not authorized for room")
	ErrMalformedEnvelope = errors.New("malformed message envelope")
	ErrUnsupportedKind   = errors.New("unsupported message type")
	ErrPersistenceFailed = errors.New("message persistence failed")
	ErrAlreadyBound      = errors.New("connection already bound to a room")
)
