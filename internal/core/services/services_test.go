package services

import (
	"io"
	"log/slog"
	"testing"
	"tradechat/internal/core/contracts/mock"
	"tradechat/internal/core/domain"
	domainmock "tradechat/internal/core/domain/mock"

	"github.com/golang/mock/gomock"
)

var (
	buyer    = &domain.User{ID: 7, Email: "buyer@example.com", Nickname: "buyer"}
	seller   = &domain.User{ID: 9, Email: "seller@example.com", Nickname: "seller"}
	stranger = &domain.User{ID: 11, Email: "stranger@example.com", Nickname: "stranger"}
	room     = &domain.ChatRoom{ID: 3, BuyerID: buyer.ID, SellerID: seller.ID, ProductID: 42}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mocks struct {
	verifier *mock.MockTokenVerifier
	users    *domainmock.MockUserRepository
	rooms    *domainmock.MockChatRoomRepository
	messages *domainmock.MockMessageRepository
	notifier *mock.MockNotifier
}

func newMocks(t *testing.T) *mocks {
	ctrl := gomock.NewController(t)
	return &mocks{
		verifier: mock.NewMockTokenVerifier(ctrl),
		users:    domainmock.NewMockUserRepository(ctrl),
		rooms:    domainmock.NewMockChatRoomRepository(ctrl),
		messages: domainmock.NewMockMessageRepository(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
	}
}

// allowUser makes token resolve to user for the whole test.
func (m *mocks) allowUser(token string, user *domain.User) {
	m.verifier.EXPECT().VerifyToken(token).
		Return(&domain.TokenClaims{UserID: user.ID, Email: user.Email}, nil).AnyTimes()
	m.users.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil).AnyTimes()
}

func (m *mocks) allowRoom(r *domain.ChatRoom) {
	m.rooms.EXPECT().GetChatRoomByID(gomock.Any(), r.ID).Return(r, nil).AnyTimes()
}
