package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"tradechat/internal/core/contracts"
	"tradechat/internal/core/domain"
	"tradechat/pkg/logging"

	"github.com/google/uuid"
)

const previewLimit = 80

// MessageService turns a typed inbound payload into a persisted ChatMessage.
type MessageService struct {
	log      *slog.Logger
	repo     domain.MessageRepository
	notifier contracts.Notifier // optional
	pending  sync.WaitGroup
}

func NewMessageService(
	log *slog.Logger,
	repo domain.MessageRepository,
	notifier contracts.Notifier,
) *MessageService {
	return &MessageService{
		log:      log,
		repo:     repo,
		notifier: notifier,
	}
}

// Route persists content and returns the canonical outbound record.
// Unsupported content yields domain.ErrUnsupportedKind without touching the
// store; store errors yield domain.ErrPersistenceFailed.
func (s *MessageService) Route(
	ctx context.Context,
	roomID int64,
	sender *domain.User,
	content domain.Content,
) (*domain.ChatMessage, error) {
	msg := &domain.Message{
		ChatRoomID: roomID,
		SenderID:   sender.ID,
	}
	switch c := content.(type) {
	case domain.TextContent:
		msg.Type, msg.Content = domain.TypeText, c.Text
	case domain.ImageContent:
		msg.Type, msg.Content = domain.TypeImage, domain.NormalizeImageURL(c.URL)
	case domain.EmojiContent:
		msg.Type, msg.Content = domain.TypeEmoji, c.Code
	default:
		return nil, domain.ErrUnsupportedKind
	}
	saved, err := s.repo.SaveMessage(ctx, msg)
	if err != nil {
		s.log.ErrorContext(ctx, "messages - route - save message failed", logging.Room(roomID), logging.User(sender.ID), logging.Err(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	if saved == nil {
		return nil, domain.ErrPersistenceFailed
	}
	s.log.InfoContext(ctx, "messages - route - save message success", logging.Room(roomID), logging.User(sender.ID), logging.Message(saved.ID), logging.Kind(string(saved.Type)))
	out := domain.NewChatMessage(saved, sender)
	s.notify(ctx, out)
	return out, nil
}

// notify dispatches to the side channel without blocking the caller.
func (s *MessageService) notify(ctx context.Context, msg *domain.ChatMessage) {
	if s.notifier == nil {
		return
	}
	n := domain.Notification{
		ID:             uuid.NewString(),
		ChatRoomID:     msg.ChatRoomID,
		MessageID:      msg.MessageID,
		SenderID:       msg.SenderID,
		SenderNickname: msg.SenderNickname,
		Type:           string(msg.MessageType),
		Preview:        preview(msg),
		CreatedAt:      msg.SentAt,
	}
	detached := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.notifier.Notify(detached, n); err != nil {
			s.log.WarnContext(detached, "messages - notify - notification dropped", logging.Message(n.MessageID), logging.Err(err))
		}
	}()
}

// Drain waits for in-flight notifications or until ctx is done.
func (s *MessageService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func preview(msg *domain.ChatMessage) string {
	switch msg.MessageType {
	case domain.TypeImage:
		return "sent a photo"
	case domain.TypeEmoji:
		return msg.Content
	}
	r := []rune(msg.Content)
	if len(r) > previewLimit {
		return string(r[:previewLimit]) + "…"
	}
	return msg.Content
}
