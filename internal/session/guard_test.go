package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	sess *Session
	err  error
}

func (f *fakeChecker) Check(ctx context.Context, token string) (*Session, error) {
	return f.sess, f.err
}

func serveGuarded(t *testing.T, checker Checker, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	handler := Guard(checker, "sb-access-token", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGuardRedirects(t *testing.T) {
	token := &http.Cookie{Name: "sb-access-token", Value: "tok"}
	authed := &fakeChecker{sess: &Session{UserID: "u1"}}
	anon := &fakeChecker{}

	tests := []struct {
		name       string
		checker    Checker
		path       string
		cookie     *http.Cookie
		wantStatus int
		wantLoc    string
	}{
		{"upload without session redirects to sign-in", anon, "/upload", nil, http.StatusFound, "/auth"},
		{"upload with invalid token redirects to sign-in", anon, "/upload", token, http.StatusFound, "/auth"},
		{"upload with session passes", authed, "/upload", token, http.StatusOK, ""},
		{"sign-in with session redirects to upload", authed, "/auth", token, http.StatusFound, "/upload"},
		{"sign-in without session passes", anon, "/auth", nil, http.StatusOK, ""},
		{"unrelated path passes either way", anon, "/health", nil, http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serveGuarded(t, tc.checker, tc.path, tc.cookie)
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantLoc != "" {
				assert.Equal(t, tc.wantLoc, rec.Header().Get("Location"))
			}
		})
	}
}

func TestGuardCheckerFailureTreatedAsNoSession(t *testing.T) {
	broken := &fakeChecker{err: assert.AnError}
	rec := serveGuarded(t, broken, "/upload", &http.Cookie{Name: "sb-access-token", Value: "tok"})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get("Location"))
}

func TestGuardDisabledPassesEverything(t *testing.T) {
	rec := serveGuarded(t, nil, "/upload", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSession(t *testing.T) {
	handler := RequireSession(&fakeChecker{}, "sb-access-token", nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized - Please login"}`, rec.Body.String())
}

func TestSessionAttachedToContext(t *testing.T) {
	var got *Session
	handler := Guard(&fakeChecker{sess: &Session{UserID: "u1", Email: "a@b.c"}}, "sb-access-token", nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = FromContext(r.Context())
		}))
	req := httptest.NewRequest(http.MethodGet, "/upload", nil)
	req.Header.Set("Authorization", "Bearer tok")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
}
