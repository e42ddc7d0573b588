package middleware

import (
	"context"
	"fmt"

	"movie-booking/pkg/menu"

	"go.uber.org/zap"
)

// Recover middleware turns a handler panic into an error so the menu keeps running.
func Recover(logger *zap.Logger) menu.Middleware {
	return func(next menu.HandlerFunc) menu.HandlerFunc {
		return func(ctx context.Context, c *menu.Console) (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					opt, _ := menu.OptionFromContext(ctx)
					logger.Error("PANIC recovered",
						zap.Any("error", rec),
						zap.String("option", opt.Key),
						zap.Stack("stack"),
					)

					err = fmt.Errorf("internal error while running %q", opt.Title)
				}
			}()
			return next(ctx, c)
		}
	}
}
