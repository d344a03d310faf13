// Package session gates navigation behind the identity provider's session.
// The guard performs no verification of its own; validity is whatever the
// provider says it is.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Paths the guard redirects between.
const (
	SignInPath = "/auth"
	UploadPath = "/upload"
)

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID string
	Email  string
}

// Checker resolves a session token to a Session. A nil Session with a nil
// error means "no valid session"; errors are reserved for transport faults.
type Checker interface {
	Check(ctx context.Context, token string) (*Session, error)
}

type contextKey struct{}

// FromContext returns the session attached by the guard, if any.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}

// Guard returns middleware applying the navigation rules: the upload flow
// without a session redirects to sign-in, sign-in with a session redirects to
// the upload flow, everything else passes through. With a nil checker every
// request passes (development mode).
func Guard(checker Checker, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if checker == nil {
				next.ServeHTTP(w, r)
				return
			}

			sess := resolve(r, checker, cookieName, logger)

			switch {
			case strings.HasPrefix(r.URL.Path, UploadPath) && sess == nil:
				http.Redirect(w, r, SignInPath, http.StatusFound)
			case strings.HasPrefix(r.URL.Path, SignInPath) && sess != nil:
				http.Redirect(w, r, UploadPath, http.StatusFound)
			default:
				if sess != nil {
					r = r.WithContext(context.WithValue(r.Context(), contextKey{}, sess))
				}
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequireSession returns middleware for API routes: no session means a 401
// JSON error instead of a redirect.
func RequireSession(checker Checker, cookieName string, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if checker == nil {
				next.ServeHTTP(w, r)
				return
			}
			sess := resolve(r, checker, cookieName, logger)
			if sess == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Unauthorized - Please login"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, sess)))
		})
	}
}

func resolve(r *http.Request, checker Checker, cookieName string, logger *slog.Logger) *Session {
	token := tokenFromRequest(r, cookieName)
	if token == "" {
		return nil
	}
	sess, err := checker.Check(r.Context(), token)
	if err != nil {
		logger.Warn("session.check.failed", "path", r.URL.Path, "error", err)
		return nil
	}
	return sess
}

func tokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	// fall back to a bearer header for non-browser clients
	auth := r.Header.Get("Authorization")
	if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
