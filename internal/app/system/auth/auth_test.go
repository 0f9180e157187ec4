package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const testKey = "test-session-key-must-be-32-chars-long"

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testKey, "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

// sessionCookie issues a cookie the way the sign-in service does.
func sessionCookie(t *testing.T, values map[any]any) *http.Cookie {
	t.Helper()
	store := sessions.NewCookieStore([]byte(testKey))
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	sess, _ := store.New(req, "test-session")
	for k, v := range values {
		sess.Values[k] = v
	}
	if err := sess.Save(req, rec); err != nil {
		t.Fatalf("save session: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "x", "", false, zap.NewNop()); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestNewSessionManager_DefaultName(t *testing.T) {
	sm, err := auth.NewSessionManager(testKey, "", "", true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sm.Name() != auth.DefaultSessionName {
		t.Errorf("Name: got %q", sm.Name())
	}
}

func TestRequireSignedIn_NoUser_Returns401(t *testing.T) {
	sm := newTestSessionManager(t)
	rec := httptest.NewRecorder()
	sm.RequireSignedIn(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/dashboard", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
}

func TestRequireSignedIn_WithUser_Proceeds(t *testing.T) {
	sm := newTestSessionManager(t)
	req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil), &auth.SessionUser{ID: "1", Role: "member"})
	rec := httptest.NewRecorder()
	sm.RequireSignedIn(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	sm := newTestSessionManager(t)
	tests := []struct {
		name    string
		user    *auth.SessionUser
		allowed []string
		want    int
	}{
		{"no user", nil, []string{"admin"}, http.StatusUnauthorized},
		{"wrong role", &auth.SessionUser{ID: "1", Role: "member"}, []string{"admin"}, http.StatusForbidden},
		{"correct role", &auth.SessionUser{ID: "1", Role: "admin"}, []string{"admin"}, http.StatusOK},
		{"one of many", &auth.SessionUser{ID: "1", Role: "member"}, []string{"admin", "member"}, http.StatusOK},
		{"case insensitive", &auth.SessionUser{ID: "1", Role: "ADMIN"}, []string{" Admin "}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/dashboard/summary", nil)
			if tt.user != nil {
				req = auth.WithTestUser(req, tt.user)
			}
			rec := httptest.NewRecorder()
			sm.RequireRole(tt.allowed...)(okHandler()).ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestCurrentUser_NoUser(t *testing.T) {
	if _, ok := auth.CurrentUser(httptest.NewRequest("GET", "/", nil)); ok {
		t.Error("expected no user")
	}
}

func TestLoadSessionUser_FromCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie(t, map[any]any{
		"is_authenticated": true,
		"user_id":          "65f000000000000000000001",
		"user_name":        "Сараа",
		"user_role":        "admin",
	}))

	var got *auth.SessionUser
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("expected user in context")
	}
	if got.Name != "Сараа" || got.Role != "admin" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestLoadSessionUser_NotAuthenticated(t *testing.T) {
	sm := newTestSessionManager(t)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie(t, map[any]any{"user_id": "abc"}))

	found := true
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req)

	if found {
		t.Error("expected no user without is_authenticated")
	}
}

func TestLoadSessionUser_TamperedCookie(t *testing.T) {
	sm := newTestSessionManager(t)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "test-session", Value: "not-a-valid-cookie"})

	called, found := false, true
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, found = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("expected next handler to run")
	}
	if found {
		t.Error("expected no user for tampered cookie")
	}
}

type stubFetcher struct{ user *auth.SessionUser }

func (s stubFetcher) FetchUser(ctx context.Context, id string) *auth.SessionUser { return s.user }

func TestLoadSessionUser_UsesFetcher(t *testing.T) {
	sm := newTestSessionManager(t)
	sm.SetUserFetcher(stubFetcher{user: &auth.SessionUser{ID: "x", Role: "member"}})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie(t, map[any]any{"is_authenticated": true, "user_id": "x", "user_role": "admin"}))

	var got *auth.SessionUser
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || got.Role != "member" {
		t.Errorf("expected fetched role to win, got %+v", got)
	}

	sm.SetUserFetcher(stubFetcher{})
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(sessionCookie(t, map[any]any{"is_authenticated": true, "user_id": "x"}))
	found := true
	sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req)
	if found {
		t.Error("expected signed out when fetcher returns nil")
	}
}
