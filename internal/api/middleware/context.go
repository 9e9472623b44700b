package middleware

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

var errNoUserID = errors.New("no user id in context")

// ContextWithUserID stamps the acting user's id onto the context. The JWT
// middleware does this for requests; tests call it directly.
func ContextWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext recovers the id set by ContextWithUserID. Handlers
// treat the error as an unauthenticated request.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	switch id := ctx.Value(userIDKey).(type) {
	case uuid.UUID:
		return id, nil
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, errNoUserID
		}
		return parsed, nil
	default:
		return uuid.Nil, errNoUserID
	}
}
