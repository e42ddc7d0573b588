package middleware

import (
	"context"
	"time"

	"movie-booking/pkg/menu"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// Logger middleware
func Logger(logger *zap.Logger) menu.Middleware {
	return func(next menu.HandlerFunc) menu.HandlerFunc {
		return func(ctx context.Context, c *menu.Console) error {
			start := time.Now()

			err := next(ctx, c)

			fields := []zap.Field{zap.Duration("duration", time.Since(start))}
			if opt, ok := menu.OptionFromContext(ctx); ok {
				fields = append(fields,
					zap.String("option", opt.Key),
					zap.String("title", opt.Title),
				)
			}
			if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
				fields = append(fields, zap.String("session_id", sessionID))
			}

			if err != nil {
				logger.Warn("Menu option failed", append(fields, zap.Error(err))...)
				return err
			}

			logger.Info("Menu option", fields...)
			return nil
		}
	}
}
