package utils

import (
	"context"
)

type contextKey string

const SessionIDKey contextKey = "session_id"

func SetSessionContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionVal := ctx.Value(SessionIDKey)
	if sessionVal == nil {
		return "", false
	}

	sessionID, ok := sessionVal.(string)
	return sessionID, ok
}
