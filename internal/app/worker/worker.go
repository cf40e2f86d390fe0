package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"tradechat/internal/core/contracts"
	"tradechat/internal/core/domain"
	"tradechat/internal/core/services"
	"tradechat/pkg/logging"
)

// NotificationWorker drains the notification stream and pushes each entry to
// the other participant of the room.
type NotificationWorker struct {
	log      *slog.Logger
	queue    contracts.MessageQueue
	rooms    *services.RoomService
	pusher   contracts.Pusher
	stream   string
	conGroup string
}

func NewNotificationWorker(
	log *slog.Logger,
	queue contracts.MessageQueue,
	rooms *services.RoomService,
	pusher contracts.Pusher,
	stream string,
	conGroup string,
) contracts.AsyncWorker {
	return &NotificationWorker{
		log:      log,
		queue:    queue,
		rooms:    rooms,
		pusher:   pusher,
		stream:   stream,
		conGroup: conGroup,
	}
}

func (w *NotificationWorker) Run(ctx context.Context) error {
	w.log.InfoContext(ctx, "worker - run - subscribing to stream", "stream", w.stream, "group", w.conGroup)
	return w.queue.SubscribeToStream(ctx, w.stream, w.conGroup, w.ProcessMessage)
}

// ProcessMessage pushes one notification. Delivery is best effort: the entry
// is acknowledged and deleted whether or not the push succeeded.
func (w *NotificationWorker) ProcessMessage(
	ctx context.Context,
	messageID string,
	raw []byte,
) error {
	defer w.finish(ctx, messageID)
	var n domain.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		w.log.ErrorContext(ctx, "worker - process message - wrong payload", "stream_id", messageID, logging.Err(err))
		return err
	}
	recipient, err := w.rooms.Counterpart(ctx, n.ChatRoomID, n.SenderID)
	if err != nil {
		w.log.WarnContext(ctx, "worker - process message - recipient unresolved", logging.Room(n.ChatRoomID), logging.Err(err))
		return err
	}
	if err := w.pusher.Push(ctx, domain.Push{RecipientID: recipient, Notification: n}); err != nil {
		w.log.WarnContext(ctx, "worker - process message - push failed", logging.User(recipient), logging.Message(n.MessageID), logging.Err(err))
		return fmt.Errorf("push notification %s: %w", n.ID, err)
	}
	w.log.InfoContext(ctx, "worker - process message - push success", logging.User(recipient), logging.Message(n.MessageID))
	return nil
}

func (w *NotificationWorker) finish(ctx context.Context, messageID string) {
	// remove it from the Pending Entries List (PEL)
	if err := w.queue.AcknowledgeMessage(ctx, w.stream, w.conGroup, messageID); err != nil {
		w.log.ErrorContext(ctx, "worker - process message - acknowledge message failed", "stream_id", messageID, logging.Err(err))
		return
	}
	// keeps the stream memory-efficient
	if err := w.queue.DeleteMessage(ctx, w.stream, messageID); err != nil {
		w.log.ErrorContext(ctx, "worker - process message - delete message failed", "stream_id", messageID, logging.Err(err))
	}
}
