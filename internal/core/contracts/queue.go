package contracts

import (
	"context"
)

type MessageQueue interface {
	// Producer side
	PublishToStream(ctx context.Context, stream string, payload []byte) error
	// Consumer side
	// SubscribeToStream reads the stream through a consumer group until ctx is done
	SubscribeToStream(ctx context.Context, stream string, conGroup string, handler func(ctx context.Context, messageID string, data []byte) error) error
	// AcknowledgeMessage removes the message from the group's pending list
	AcknowledgeMessage(ctx context.Context, stream, conGroup, mesgID string) error
	// DeleteMessage removes the message from the stream
	DeleteMessage(ctx context.Context, stream, mesgID string) error
}
