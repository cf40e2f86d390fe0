package handlers

import (
	"context"
	"net/http"
	"slices"
	"time"
	"tradechat/internal/app/server/ws"
	"tradechat/internal/core/services"
	"tradechat/pkg/logging"
	"tradechat/pkg/middleware"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const roomQueryParam = "chatRoomId"

type WSOptions struct {
	ReadLimit      int64
	WriteTimeout   time.Duration
	SendBuffer     int
	AllowedOrigins []string
}

type WSHandler struct {
	manager  services.IManagerService
	upgrader websocket.Upgrader
	opts     WSOptions
}

func NewWSHandler(manager services.IManagerService, opts WSOptions) *WSHandler {
	return &WSHandler{
		manager: manager,
		opts:    opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(opts.AllowedOrigins),
		},
	}
}

// Handler upgrades first and rejects afterwards, so every auth or protocol
// failure reaches the client as a policy violation close frame.
func (s *WSHandler) Handler(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())
	span := trace.SpanFromContext(r.Context())
	token, _ := middleware.BearerToken(r.Header.Get("Authorization"))
	rawRoomID := r.URL.Query().Get(roomQueryParam)
	span.SetAttributes(attribute.String("chat.room_id", rawRoomID))

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ErrorContext(r.Context(), "ws handler - upgrade - ws upgrade failed", logging.Err(err))
		return
	}
	// the session outlives the upgrade request
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()
	socket := ws.NewWebSocket(ctx, conn, s.opts.WriteTimeout)
	client := ws.NewClient(ctx, socket, token, s.opts.SendBuffer)
	defer s.manager.HandleDisconnect(ctx, client)

	if err := s.manager.HandleConnect(ctx, client, rawRoomID); err != nil {
		log.InfoContext(ctx, "ws handler - handle connect - connection refused", logging.Err(err))
		return
	}
	log.InfoContext(ctx, "ws handler - ws connection established", logging.User(client.UserID()), logging.Room(client.RoomID()))
	socket.ReadLoop(log, s.opts.ReadLimit, func(data []byte) {
		_ = s.manager.HandleMessage(ctx, client, data)
	})
	log.InfoContext(ctx, "ws handler - ws closed", logging.User(client.UserID()))
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}

