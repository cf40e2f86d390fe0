package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tradechat/internal/app/server/handlers"
	"tradechat/pkg/middleware"
)

type Server struct {
	log           *slog.Logger
	name          string
	mux           *http.ServeMux
	srv           *http.Server
	wsHandler     *handlers.WSHandler
	healthHandler *handlers.HealthHandler
}

func NewServer(
	log *slog.Logger,
	name string,
	addr string,
	wsHandler *handlers.WSHandler,
	healthHandler *handlers.HealthHandler,
) *Server {
	s := &Server{
		log:           log,
		name:          name,
		mux:           http.NewServeMux(),
		wsHandler:     wsHandler,
		healthHandler: healthHandler,
	}
	s.routes()
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	trace := middleware.TracerMiddleware(s.name)
	logReq := middleware.RequestLogger(s.log)

	s.mux.HandleFunc("GET /healthz", s.healthHandler.Handler)
	// Token and room checks run after the upgrade inside the handler.
	s.mux.Handle("GET /ws/chat", trace(logReq(http.HandlerFunc(s.wsHandler.Handler))))
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.log.Info("server starting", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
