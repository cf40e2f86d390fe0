package postgres

import (
	"context"
	"database/sql"
	"tradechat/internal/core/domain"
)

type MessageRepo struct {
	db *sql.DB
}

func NewMessageRepo(db *sql.DB) *MessageRepo {
	return &MessageRepo{
		db: db,
	}
}

/*
	CREATE TABLE chat_messages (
		message_id   BIGSERIAL PRIMARY KEY,
		chat_room_id BIGINT NOT NULL REFERENCES chat_rooms (chat_room_id),
		sender_id    BIGINT NOT NULL REFERENCES users (user_id),
		message_type VARCHAR(16) NOT NULL,
		content      TEXT NOT NULL,
		sent_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	);
*/

func (r *MessageRepo) SaveMessage(
	ctx context.Context,
	msg *domain.Message,
) (*domain.Message, error) {
	if msg.ChatRoomID <= 0 {
		return nil, domain.ErrInvalidChatRoomID
	}
	if msg.SenderID <= 0 || msg.Type == "" {
		return nil, domain.ErrInvalidMessage
	}
	saved := *msg
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO chat_messages (
			chat_room_id, sender_id, message_type, content
		) VALUES ($1, $2, $3, $4)
		RETURNING message_id, sent_at
	`,
		msg.ChatRoomID,
		msg.SenderID,
		string(msg.Type),
		msg.Content,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
