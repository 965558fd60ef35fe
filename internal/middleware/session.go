package middleware

import (
	"context"
	"net/http"

	"github.com/crucial707/scheduler/internal/session"
)

type key string

const sessionKey key = "session"

// RequireUser is the session gate for protected routes. Requests without a
// valid session are redirected to /login before any handler or storage code
// runs; otherwise the session is injected into the request context.
func RequireUser(mgr *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := mgr.FromRequest(r)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the session placed in the context by RequireUser.
func UserFrom(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}

// WithUser returns a context carrying the session, as RequireUser would set it.
func WithUser(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}
