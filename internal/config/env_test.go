package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CHAT_BROADCAST_SCOPE", "")
	t.Setenv("JWT_ACCESS_TTL", "")

	cfg := Load()

	assert.Equal(t, ScopeGlobal, cfg.Chat.BroadcastScope)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, int64(512*1024), cfg.Chat.ReadLimit)
	assert.True(t, cfg.Notifier.Enabled)
	assert.Empty(t, cfg.Chat.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHAT_BROADCAST_SCOPE", ScopeRoom)
	t.Setenv("JWT_ACCESS_TTL", "2h")
	t.Setenv("CHAT_SEND_BUFFER", "16")
	t.Setenv("NOTIFY_ENABLED", "false")
	t.Setenv("CHAT_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()

	assert.Equal(t, ScopeRoom, cfg.Chat.BroadcastScope)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 16, cfg.Chat.SendBuffer)
	assert.False(t, cfg.Notifier.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Chat.AllowedOrigins)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("REDIS_DIAL_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
}
