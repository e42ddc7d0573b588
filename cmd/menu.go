package cmd

import (
	"context"
	"io"

	"movie-booking/pkg/menu"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// MenuLoop runs one interactive session until the user exits or input ends.
func MenuLoop(ctx context.Context, router *menu.Router, in io.Reader, out io.Writer, logger *zap.Logger) error {
	sessionID := utils.GenerateUUIDString()
	ctx = utils.SetSessionContext(ctx, sessionID)

	logger.Info("Menu session started", zap.String("session_id", sessionID))
	defer logger.Info("Menu session ended", zap.String("session_id", sessionID))

	return router.Run(ctx, menu.NewConsole(in, out))
}
