package pkg

import (
	"context"

	"github.com/google/uuid"
)

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// IsValidSessionID - reports whether id looks like an id issued by GenerateNewSessionID.
func IsValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

type sessionKey struct{}

// WithSessionID - returns a copy of ctx carrying the browser session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionIDFromContext - session id stored by WithSessionID.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}
