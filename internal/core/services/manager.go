package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"tradechat/internal/core/contracts"
	"tradechat/internal/core/domain"
	"tradechat/pkg/logging"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type IManagerService interface {
	// HandleConnect authenticates and authorizes a freshly upgraded connection,
	// binds its room and registers it. Any failure rejects the connection.
	HandleConnect(ctx context.Context, c contracts.Client, rawRoomID string) error
	// HandleMessage re-checks token and room access, then routes and broadcasts.
	// Any failure rejects the connection.
	HandleMessage(ctx context.Context, c contracts.Client, raw []byte) error
	// HandleDisconnect removes the connection from the registry. Safe to repeat.
	HandleDisconnect(ctx context.Context, c contracts.Client)
}

var tracer = otel.Tracer("manager-service")

var ErrConnectionClosed = errors.New("connection closed")

// close reasons sent to clients, most specific first
var rejectReasons = []error{
	domain.ErrMissingToken,
	domain.ErrInvalidToken,
	domain.ErrUnknownUser,
	domain.ErrInvalidRoomID,
	domain.ErrRoomNotFound,
	domain.ErrNotAuthorized,
	domain.ErrMalformedEnvelope,
	domain.ErrUnsupportedKind,
	domain.ErrPersistenceFailed,
	domain.ErrAlreadyBound,
}

type ManagerService struct {
	log         *slog.Logger
	auth        *AuthService
	rooms       *RoomService
	messages    *MessageService
	broadcaster *Broadcaster
	registry    contracts.Registry
}

func NewManagerService(
	log *slog.Logger,
	auth *AuthService,
	rooms *RoomService,
	messages *MessageService,
	broadcaster *Broadcaster,
	registry contracts.Registry,
) *ManagerService {
	return &ManagerService{
		log:         log,
		auth:        auth,
		rooms:       rooms,
		messages:    messages,
		broadcaster: broadcaster,
		registry:    registry,
	}
}

func (m *ManagerService) HandleConnect(
	ctx context.Context,
	c contracts.Client,
	rawRoomID string,
) error {
	ctx, span := tracer.Start(ctx, "ManagerService.HandleConnect", trace.WithAttributes(
		attribute.String("chat.room_id", rawRoomID),
	))
	defer span.End()
	if c.Token() == "" {
		return m.reject(ctx, span, c, "handle connect", domain.ErrMissingToken)
	}
	user, err := m.auth.Authenticate(ctx, c.Token())
	if err != nil {
		return m.reject(ctx, span, c, "handle connect", err)
	}
	span.SetAttributes(attribute.Int64("user.id", user.ID))
	roomID, err := strconv.ParseInt(rawRoomID, 10, 64)
	if err != nil {
		return m.reject(ctx, span, c, "handle connect", domain.ErrInvalidRoomID)
	}
	if err := m.rooms.CheckAccess(ctx, user, roomID); err != nil {
		return m.reject(ctx, span, c, "handle connect", err)
	}
	if err := c.Bind(user.ID, roomID); err != nil {
		return m.reject(ctx, span, c, "handle connect", err)
	}
	if prev := m.registry.Register(user.ID, c); prev != nil && prev != c {
		// the superseded connection stays open until it drops on its own
		m.log.WarnContext(ctx, "manager - handle connect - previous connection superseded", logging.User(user.ID), logging.Room(prev.RoomID()))
	}
	span.SetStatus(codes.Ok, "connected")
	m.log.InfoContext(ctx, "manager - handle connect - connection registered", logging.User(user.ID), logging.Room(roomID))
	return nil
}

func (m *ManagerService) HandleMessage(
	ctx context.Context,
	c contracts.Client,
	raw []byte,
) error {
	ctx, span := tracer.Start(ctx, "ManagerService.HandleMessage", trace.WithAttributes(
		attribute.Int64("user.id", c.UserID()),
		attribute.Int64("chat.room_id", c.RoomID()),
		attribute.Int("payload_size", len(raw)),
	))
	defer span.End()
	if !c.IsOpen() {
		span.RecordError(ErrConnectionClosed)
		return ErrConnectionClosed
	}
	// token and room membership may have been revoked since connect
	user, err := m.auth.Authenticate(ctx, c.Token())
	if err != nil {
		return m.reject(ctx, span, c, "handle message", err)
	}
	if err := m.rooms.CheckAccess(ctx, user, c.RoomID()); err != nil {
		return m.reject(ctx, span, c, "handle message", err)
	}
	content, err := domain.DecodeInbound(raw)
	if err != nil {
		return m.reject(ctx, span, c, "handle message", err)
	}
	out, err := m.messages.Route(ctx, c.RoomID(), user, content)
	if err != nil {
		return m.reject(ctx, span, c, "handle message", err)
	}
	delivered := m.broadcaster.Broadcast(ctx, out)
	span.SetAttributes(
		attribute.Int64("chat.message_id", out.MessageID),
		attribute.Int("chat.delivered", delivered),
	)
	m.log.InfoContext(ctx, "manager - handle message - message broadcast", logging.User(user.ID), logging.Room(out.ChatRoomID), logging.Message(out.MessageID), "delivered", delivered)
	return nil
}

func (m *ManagerService) HandleDisconnect(ctx context.Context, c contracts.Client) {
	_, span := tracer.Start(ctx, "ManagerService.HandleDisconnect", trace.WithAttributes(
		attribute.Int64("user.id", c.UserID()),
	))
	defer span.End()
	removed := m.registry.UnregisterByConnection(c)
	c.Close()
	if removed {
		m.log.InfoContext(ctx, "manager - handle disconnect - connection unregistered", logging.User(c.UserID()), logging.Room(c.RoomID()))
	}
}

func (m *ManagerService) reject(
	ctx context.Context,
	span trace.Span,
	c contracts.Client,
	stage string,
	err error,
) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, "connection rejected")
	m.log.WarnContext(ctx, "manager - "+stage+" - connection rejected", logging.User(c.UserID()), logging.Room(c.RoomID()), logging.Err(err))
	c.Reject(rejectReason(err))
	m.registry.UnregisterByConnection(c)
	return err
}

func rejectReason(err error) string {
	for _, reason := range rejectReasons {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}
	return "policy violation"
}
