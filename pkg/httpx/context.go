package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated user's id through the request
// context. It is only ever set by the session middleware.
const CtxKeyUserID ctxKey = "user_id"

// UserID returns the authenticated user id from the request context, or ""
// when the request did not pass through the session middleware.
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
