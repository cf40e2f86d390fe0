package postgres

import (
	"context"
	"database/sql"
	"errors"
	"tradechat/internal/core/domain"
)

type ChatRoomRepo struct {
	db *sql.DB
}

func NewChatRoomRepo(db *sql.DB) *ChatRoomRepo {
	return &ChatRoomRepo{db: db}
}

/*
	-- Chat rooms are opened by the marketplace when a buyer contacts a seller
	CREATE TABLE chat_rooms (
		chat_room_id BIGSERIAL PRIMARY KEY,
		buyer_id     BIGINT NOT NULL REFERENCES users (user_id),
		seller_id    BIGINT NOT NULL REFERENCES users (user_id),
		product_id   BIGINT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	);
*/

func (r *ChatRoomRepo) GetChatRoomByID(ctx context.Context, id int64) (*domain.ChatRoom, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidChatRoomID
	}
	room := &domain.ChatRoom{ID: id}
	query := `SELECT buyer_id, seller_id, product_id, created_at FROM chat_rooms WHERE chat_room_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&room.BuyerID, &room.SellerID, &room.ProductID, &room.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChatRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
