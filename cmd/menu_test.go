package cmd_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"movie-booking/cmd"
	"movie-booking/pkg/menu"
	"movie-booking/pkg/utils"
)

func TestMenuLoop_TagsSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	var seen string
	router := menu.NewRouter("Menu")
	router.Handle("1", "Who", func(ctx context.Context, c *menu.Console) error {
		seen, _ = utils.GetSessionIDFromContext(ctx)
		return nil
	})

	var out bytes.Buffer
	err := cmd.MenuLoop(context.Background(), router, strings.NewReader("1\n0\n"), &out, zap.New(core))

	require.NoError(t, err)
	assert.NotEmpty(t, seen)

	started := logs.FilterMessage("Menu session started").All()
	require.Len(t, started, 1)
	assert.Equal(t, seen, started[0].ContextMap()["session_id"])
	assert.Len(t, logs.FilterMessage("Menu session ended").All(), 1)
}
