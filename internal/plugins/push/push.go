package push

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"tradechat/internal/core/domain"
	"tradechat/pkg/logging"

	"github.com/go-resty/resty/v2"
)

// WebhookPusher posts each push as JSON to an external notification gateway.
type WebhookPusher struct {
	client *resty.Client
	url    string
}

func NewWebhookPusher(url string, timeout time.Duration) *WebhookPusher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &WebhookPusher{client: client, url: url}
}

func (p *WebhookPusher) Push(ctx context.Context, push domain.Push) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(push).
		Post(p.url)
	if err != nil {
		return fmt.Errorf("push webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("push webhook: unexpected status %d", resp.StatusCode())
	}
	return nil
}

// LogPusher only records the push; used when no gateway is configured.
type LogPusher struct {
	log *slog.Logger
}

func NewLogPusher(log *slog.Logger) *LogPusher {
	return &LogPusher{log: log}
}

func (p *LogPusher) Push(ctx context.Context, push domain.Push) error {
	p.log.InfoContext(ctx, "push - send notification",
		logging.User(push.RecipientID),
		logging.Room(push.Notification.ChatRoomID),
		logging.Message(push.Notification.MessageID),
		"preview", push.Notification.Preview,
	)
	return nil
}
