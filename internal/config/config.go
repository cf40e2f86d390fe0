package config

import "time"

type Config struct {
	Service  *ServiceConfig
	Redis    *RedisConfig
	Postgres *PostgresConfig
	Auth     *AuthConfig
	Chat     *ChatConfig
	Notifier *NotifierConfig
	Logger   *LoggerConfig
	Tracer   *TracerConfig
}

type ServiceConfig struct {
	Name            string
	Env             string
	Add             string
	ShutdownTimeout time.Duration
}

type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
	PingTimeout  time.Duration
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

type AuthConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// Broadcast scopes
const (
	ScopeGlobal = "global"
	ScopeRoom   = "room"
)

type ChatConfig struct {
	BroadcastScope string
	ReadLimit      int64
	WriteTimeout   time.Duration
	SendBuffer     int
	AllowedOrigins []string
}

type NotifierConfig struct {
	Enabled        bool
	Stream         string
	ConsumerGroup  string
	WebhookURL     string
	WebhookTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type TracerConfig struct {
	Enabled bool
	Address string
}
