package rest

import (
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
)

const sessionCookie = "user_session"

// sessionMiddleware - attaches the browser session id to the request context, issuing a cookie
// when the request has none or carries a malformed one.
func sessionMiddleware(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(sessionCookie); err == nil && pkg.IsValidSessionID(cookie.Value) {
				sessionID = cookie.Value
			}

			if sessionID == "" {
				sessionID = pkg.GenerateNewSessionID()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(pkg.WithSessionID(r.Context(), sessionID)))
		})
	}
}

func sessionID(r *http.Request) string {
	id, _ := pkg.SessionIDFromContext(r.Context())
	return id
}
