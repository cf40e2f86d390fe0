package contracts

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock

import (
	"context"
	"tradechat/internal/core/domain"
)

// Notifier hands a persisted message to the push side channel.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// Pusher delivers a resolved notification to an external push provider.
type Pusher interface {
	Push(ctx context.Context, p domain.Push) error
}
