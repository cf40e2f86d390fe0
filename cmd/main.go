package main

import (
	"context"
	"os"
	"tradechat/internal/app/registry"
	"tradechat/internal/app/server"
	"tradechat/internal/app/server/handlers"
	"tradechat/internal/app/worker"
	"tradechat/internal/config"
	"tradechat/internal/core/contracts"
	"tradechat/internal/core/services"
	"tradechat/internal/platform/logger"
	"tradechat/internal/platform/telemetry"
	"tradechat/internal/plugins/postgres"
	"tradechat/internal/plugins/push"
	redisPlugin "tradechat/internal/plugins/redis"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	// Config
	cfg := config.Load()

	// Logger
	log := logger.NewLogger(*cfg)
	log.Info("starting application")
	if cfg.Auth.Secret == "" {
		log.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	otelShutdown, err := telemetry.InitTelemetry(ctx, *cfg)
	if err != nil {
		log.Error("failed to initialize telemetry", "err", err)
		otelShutdown = func(context.Context) error { return nil }
	}

	// Infra
	pdb, err := postgres.New(ctx, *cfg.Postgres, cfg.Service.Name)
	if err != nil {
		log.Error("postgres connection failed", "err", err)
		os.Exit(1)
	}
	log.Info("postgres connected")

	var (
		rdb      *redis.Client
		notifier contracts.Notifier
		msgQueue *redisPlugin.RedisMessageQueue
	)
	if cfg.Notifier.Enabled {
		if rdb, err = redisPlugin.NewRedisClient(ctx, *cfg.Redis, cfg.Service.Name); err != nil {
			log.Error("redis connection failed", "url", cfg.Redis.URL, "err", err)
			os.Exit(1)
		}
		log.Info("redis connected")
		msgQueue = redisPlugin.NewRedisMessageQueue(log, rdb)
		notifier = redisPlugin.NewStreamNotifier(msgQueue, cfg.Notifier.Stream)
	}

	// Adapters
	userRepo := postgres.NewUserRepository(pdb)
	roomRepo := postgres.NewChatRoomRepo(pdb)
	msgRepo := postgres.NewMessageRepo(pdb)

	// Core Services
	hub := registry.NewRegistry()
	tokenSvc := services.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	authSvc := services.NewAuthService(log, tokenSvc, userRepo)
	roomSvc := services.NewRoomService(log, roomRepo)
	msgSvc := services.NewMessageService(log, msgRepo, notifier)
	broadcaster := services.NewBroadcaster(log, hub, cfg.Chat.BroadcastScope == config.ScopeRoom)
	managerSvc := services.NewManagerService(log, authSvc, roomSvc, msgSvc, broadcaster, hub)

	// Worker
	workerCtx, stopWorker := context.WithCancel(ctx)
	if msgQueue != nil {
		var pusher contracts.Pusher = push.NewLogPusher(log)
		if cfg.Notifier.WebhookURL != "" {
			pusher = push.NewWebhookPusher(cfg.Notifier.WebhookURL, cfg.Notifier.WebhookTimeout)
		}
		wrkr := worker.NewNotificationWorker(log, msgQueue, roomSvc, pusher, cfg.Notifier.Stream, cfg.Notifier.ConsumerGroup)
		go func() {
			if err := wrkr.Run(workerCtx); err != nil {
				log.Error("notification worker stopped", "err", err)
			}
		}()
	}

	// Server
	wsHandler := handlers.NewWSHandler(managerSvc, handlers.WSOptions{
		ReadLimit:      cfg.Chat.ReadLimit,
		WriteTimeout:   cfg.Chat.WriteTimeout,
		SendBuffer:     cfg.Chat.SendBuffer,
		AllowedOrigins: cfg.Chat.AllowedOrigins,
	})
	srv := server.NewServer(log, cfg.Service.Name, cfg.Service.Add, wsHandler, handlers.NewHealthHandler(hub))
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Shutdown
	wait := gfshutdown.GracefulShutdown(ctx, cfg.Service.ShutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
		"notifications": func(ctx context.Context) error {
			stopWorker()
			if err := msgSvc.Drain(ctx); err != nil {
				return err
			}
			if rdb != nil {
				return rdb.Close()
			}
			return nil
		},
		"postgres": func(ctx context.Context) error {
			return pdb.Close()
		},
		"telemetry": func(ctx context.Context) error {
			return otelShutdown(ctx)
		},
	})
	exitCode := <-wait
	log.Info("shutdown complete", "code", exitCode)
	os.Exit(exitCode)
}
