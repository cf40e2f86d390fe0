package redis

import (
	"context"
	"encoding/json"
	"tradechat/internal/core/contracts"
	"tradechat/internal/core/domain"
)

// StreamNotifier queues notifications on a Redis stream for the worker.
type StreamNotifier struct {
	queue  contracts.MessageQueue
	stream string
}

func NewStreamNotifier(queue contracts.MessageQueue, stream string) *StreamNotifier {
	return &StreamNotifier{queue: queue, stream: stream}
}

func (n *StreamNotifier) Notify(ctx context.Context, note domain.Notification) error {
	raw, err := json.Marshal(note)
	if err != nil {
		return err
	}
	return n.queue.PublishToStream(ctx, n.stream, raw)
}
