package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"tradechat/internal/core/contracts"
	"tradechat/internal/core/domain"
	"tradechat/pkg/logging"
)

// Broadcaster fans a persisted message out to open connections.
type Broadcaster struct {
	log        *slog.Logger
	registry   contracts.Registry
	roomScoped bool
}

// NewBroadcaster delivers to every open connection unless roomScoped is set,
// in which case only connections bound to the message's room receive it.
func NewBroadcaster(log *slog.Logger, registry contracts.Registry, roomScoped bool) *Broadcaster {
	return &Broadcaster{
		log:        log,
		registry:   registry,
		roomScoped: roomScoped,
	}
}

// Broadcast returns the number of connections the message was handed to.
// Failed deliveries are skipped.
func (b *Broadcaster) Broadcast(ctx context.Context, msg *domain.ChatMessage) int {
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.ErrorContext(ctx, "broadcast - marshal failed", logging.Message(msg.MessageID), logging.Err(err))
		return 0
	}
	delivered := 0
	for _, c := range b.registry.AllOpen() {
		if b.roomScoped && c.RoomID() != msg.ChatRoomID {
			continue
		}
		if err := c.Send(ctx, data); err != nil {
			b.log.DebugContext(ctx, "broadcast - send skipped", logging.User(c.UserID()), logging.Err(err))
			continue
		}
		delivered++
	}
	return delivered
}
