// Package middleware provides session loading and request-scoped caller
// identity. Auth state is never ambient: the resolved user id travels in
// the request context and everything downstream reads it from there.
package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"
)

type ctxKey string

// CtxUserID holds the session-bound user id, or nothing for anonymous
// callers.
const CtxUserID ctxKey = "user_id"

// SessionKeyUserID is the session-store key for the logged-in user id.
const SessionKeyUserID = "user_id"

// NewSessionManager builds the scs manager backed by the sessions table.
func NewSessionManager(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = postgresstore.New(db)

	sm.Lifetime = 7 * 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDev

	return sm
}

// WithUser copies the session's user id into the request context so
// handlers and the admin gate never touch the session manager directly.
// Anonymous requests pass through with no user id set.
func WithUser(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sm.GetString(r.Context(), SessionKeyUserID)
			if userID != "" {
				ctx := context.WithValue(r.Context(), CtxUserID, userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the caller's user id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(CtxUserID).(string)
	return id
}

// WithUserID injects a user id directly. Used by tests.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxUserID, id)
}
