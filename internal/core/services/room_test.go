package services

import (
	"context"
	"errors"
	"testing"
	"tradechat/internal/core/domain"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomService_Authorize(t *testing.T) {
	m := newMocks(t)
	m.allowRoom(room)
	svc := NewRoomService(discardLogger(), m.rooms)
	ctx := context.Background()

	assert.True(t, svc.Authorize(ctx, buyer, room.ID))
	assert.True(t, svc.Authorize(ctx, seller, room.ID))
	assert.False(t, svc.Authorize(ctx, stranger, room.ID))
	assert.ErrorIs(t, svc.CheckAccess(ctx, stranger, room.ID), domain.ErrNotAuthorized)
}

func TestRoomService_MissingRoom(t *testing.T) {
	m := newMocks(t)
	m.rooms.EXPECT().GetChatRoomByID(gomock.Any(), int64(404)).Return(nil, domain.ErrChatRoomNotFound)
	m.rooms.EXPECT().GetChatRoomByID(gomock.Any(), int64(500)).Return(nil, errors.New("timeout"))
	svc := NewRoomService(discardLogger(), m.rooms)

	assert.ErrorIs(t, svc.CheckAccess(context.Background(), buyer, 404), domain.ErrRoomNotFound)
	assert.False(t, svc.Authorize(context.Background(), buyer, 500))
}

func TestRoomService_Counterpart(t *testing.T) {
	m := newMocks(t)
	m.allowRoom(room)
	svc := NewRoomService(discardLogger(), m.rooms)

	other, err := svc.Counterpart(context.Background(), room.ID, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, seller.ID, other)

	other, err = svc.Counterpart(context.Background(), room.ID, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, buyer.ID, other)

	_, err = svc.Counterpart(context.Background(), room.ID, stranger.ID)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}
