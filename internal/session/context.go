package session

import (
	"context"
	"net/http"

	"github.com/2beens/warmachine/pkg"
)

type ctxKey struct{}

func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(*Session)
	return sess, ok && sess != nil
}

// UserIDFromContext returns the id of the user the request is authenticated as.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	sess, ok := FromContext(ctx)
	if !ok {
		return 0, false
	}
	return sess.UserID, true
}

// ContextWithUserID is a shortcut used where only the user id matters.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return ContextWithSession(ctx, &Session{UserID: userID})
}

// RequireUserID returns the authenticated user id, or writes a 401 and
// returns false when the request carries no session.
func RequireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ok := UserIDFromContext(r.Context())
	if !ok {
		pkg.WriteJSONError(w, "Unauthenticated", http.StatusUnauthorized)
		return 0, false
	}
	return uid, true
}
