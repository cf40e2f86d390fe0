package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWithContext_RoundTrip(t *testing.T) {
	log := slog.New(slog.NewTextHandler(nil, nil))
	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
}

func TestErr(t *testing.T) {
	assert.Equal(t, "", Err(nil).Value.String())
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
}
