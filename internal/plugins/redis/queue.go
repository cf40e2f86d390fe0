package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	streamMaxLen = 10000
	readBlock    = 2 * time.Second
)

type RedisMessageQueue struct {
	rdb *redis.Client
	log *slog.Logger
}

func NewRedisMessageQueue(log *slog.Logger, rdb *redis.Client) *RedisMessageQueue {
	return &RedisMessageQueue{rdb: rdb, log: log}
}

/*
	type MessageQueue interface {
		PublishToStream(ctx context.Context, stream string, payload []byte) error
		SubscribeToStream(ctx context.Context, stream string, conGroup string, handler func(ctx context.Context, messageID string, data []byte) error) error
		AcknowledgeMessage(ctx context.Context, stream, conGroup, mesgID string) error
		DeleteMessage(ctx context.Context, stream, mesgID string) error
	}
*/

func (q *RedisMessageQueue) PublishToStream(ctx context.Context, stream string, payload []byte) error {
	return q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{"data": payload},
	}).Err()
}

// SubscribeToStream blocks, feeding entries to handler until ctx is done.
// Entries whose handler fails stay pending in the group.
func (q *RedisMessageQueue) SubscribeToStream(
	ctx context.Context,
	stream string,
	conGroup string,
	handler func(ctx context.Context, messageID string, data []byte) error,
) error {
	// Create group if not exists
	err := q.rdb.XGroupCreateMkStream(ctx, stream, conGroup, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	consumerName := uuid.NewString()
	for {
		if ctx.Err() != nil {
			return nil
		}
		// Read new messages (">")
		res, err := q.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    conGroup,
			Consumer: consumerName,
			Streams:  []string{stream, ">"},
			Count:    10,
			Block:    readBlock,
		}).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				q.log.Error("queue - subscribe - stream read failed", "stream", stream, "err", err)
				time.Sleep(100 * time.Millisecond)
			}
			continue
		}
		for _, s := range res {
			for _, msg := range s.Messages {
				raw, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				if err := handler(ctx, msg.ID, []byte(raw)); err != nil {
					q.log.Error("queue - subscribe - handler failed", "stream", stream, "message_id", msg.ID, "err", err)
				}
			}
		}
	}
}

func (q *RedisMessageQueue) AcknowledgeMessage(ctx context.Context, stream, conGroup, mesgID string) error {
	return q.rdb.XAck(ctx, stream, conGroup, mesgID).Err()
}

func (q *RedisMessageQueue) DeleteMessage(ctx context.Context, stream, mesgID string) error {
	return q.rdb.XDel(ctx, stream, mesgID).Err()
}
