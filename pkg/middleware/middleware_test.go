package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"movie-booking/pkg/menu"
	"movie-booking/pkg/middleware"
	"movie-booking/pkg/utils"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)

	h := middleware.Logger(log)(func(ctx context.Context, c *menu.Console) error {
		return nil
	})

	ctx := menu.WithOption(context.Background(), menu.Option{Key: "3", Title: "View seat map"})
	ctx = utils.SetSessionContext(ctx, "session-1")
	c := menu.NewConsole(strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, h(ctx, c))

	entries := logs.FilterMessage("Menu option").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "3", fields["option"])
	assert.Equal(t, "View seat map", fields["title"])
	assert.Equal(t, "session-1", fields["session_id"])
	assert.Contains(t, fields, "duration")
}

func TestLogger_Error(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	boom := errors.New("boom")

	h := middleware.Logger(zap.New(core))(func(ctx context.Context, c *menu.Console) error {
		return boom
	})

	err := h(context.Background(), menu.NewConsole(strings.NewReader(""), &bytes.Buffer{}))

	assert.ErrorIs(t, err, boom)
	entries := logs.FilterMessage("Menu option failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	h := middleware.Recover(zap.New(core))(func(ctx context.Context, c *menu.Console) error {
		panic("nil map write")
	})

	ctx := menu.WithOption(context.Background(), menu.Option{Key: "4", Title: "Book seats"})
	err := h(ctx, menu.NewConsole(strings.NewReader(""), &bytes.Buffer{}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Book seats")

	entries := logs.FilterMessage("PANIC recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "4", entries[0].ContextMap()["option"])
	assert.Equal(t, "nil map write", entries[0].ContextMap()["error"])
}
