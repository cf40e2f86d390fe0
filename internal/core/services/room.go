package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"tradechat/internal/core/domain"
	"tradechat/pkg/logging"
)

type RoomService struct {
	log   *slog.Logger
	rooms domain.ChatRoomRepository
}

func NewRoomService(log *slog.Logger, rooms domain.ChatRoomRepository) *RoomService {
	return &RoomService{log: log, rooms: rooms}
}

// CheckAccess returns domain.ErrRoomNotFound or domain.ErrNotAuthorized when
// user may not take part in the room. Store failures count as not found.
func (s *RoomService) CheckAccess(ctx context.Context, user *domain.User, roomID int64) error {
	room, err := s.room(ctx, roomID)
	if err != nil {
		return err
	}
	if user == nil || !room.HasParticipant(user.ID) {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *RoomService) Authorize(ctx context.Context, user *domain.User, roomID int64) bool {
	return s.CheckAccess(ctx, user, roomID) == nil
}

// Counterpart resolves the other participant of the room.
func (s *RoomService) Counterpart(ctx context.Context, roomID, userID int64) (int64, error) {
	room, err := s.room(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if !room.HasParticipant(userID) {
		return 0, domain.ErrNotAuthorized
	}
	return room.Counterpart(userID), nil
}

func (s *RoomService) room(ctx context.Context, roomID int64) (*domain.ChatRoom, error) {
	room, err := s.rooms.GetChatRoomByID(ctx, roomID)
	if err != nil {
		if !errors.Is(err, domain.ErrChatRoomNotFound) {
			s.log.ErrorContext(ctx, "room - get room - lookup failed", logging.Room(roomID), logging.Err(err))
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrRoomNotFound, err)
	}
	if room == nil {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}
