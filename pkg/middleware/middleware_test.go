package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"tradechat/pkg/logging"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		{name: "empty header", header: "", ok: false},
		{name: "missing prefix", header: "abc.def.ghi", ok: false},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", ok: false},
		{name: "lowercase scheme", header: "bearer abc", ok: false},
		{name: "prefix only", header: "Bearer ", ok: false},
		{name: "blank token", header: "Bearer    ", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestRequestLogger_InjectsLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	var got *slog.Logger
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = logging.FromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ws/chat", nil))

	assert.NotNil(t, got)
	assert.NotSame(t, slog.Default(), got)
	assert.Contains(t, buf.String(), "request started")
	assert.Contains(t, buf.String(), "path=/ws/chat")
}

func TestTracerMiddleware_PassesStatus(t *testing.T) {
	h := TracerMiddleware("tradechat")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
