// Package auth reads the signed session cookie issued by the site's sign-in
// service and exposes the current user to handlers. Sign-in itself happens
// elsewhere; this package only verifies and consumes the cookie.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Session value keys shared with the sign-in service.
const (
	isAuthKey = "is_authenticated"
	userIDKey = "user_id"
	userName  = "user_name"
	userEmail = "user_email"
	userRole  = "user_role"
)

// DefaultSessionName is used when no cookie name is configured.
const DefaultSessionName = "volunteerhub-session"

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// UserFetcher reloads a user on every request so role changes and disabled
// accounts apply immediately. A nil result signs the request out.
type UserFetcher interface {
	FetchUser(ctx context.Context, userID string) *SessionUser
}

// SessionManager decodes session cookies and guards routes by role.
type SessionManager struct {
	store   *sessions.CookieStore
	name    string
	fetcher UserFetcher
	log     *zap.Logger
}

// NewSessionManager builds a cookie store from sessionKey. In production
// (secure=true) cookies are Secure and SameSite=None; in local dev over
// http://localhost they are SameSite=Lax so browsers accept them.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, errors.New("session key is empty; provide ≥32 random chars")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		store.Options.SameSite = http.SameSiteNoneMode
	}

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// SetUserFetcher enables per-request user refresh.
func (sm *SessionManager) SetUserFetcher(f UserFetcher) { sm.fetcher = f }

// Name returns the session cookie name.
func (sm *SessionManager) Name() string { return sm.name }

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok && u != nil
}

// WithTestUser injects u into the request context the same way
// LoadSessionUser does. Intended for handler tests.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// LoadSessionUser injects the user into context if the cookie carries a
// signed-in session. Undecodable cookies are treated as signed out.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.store.Get(r, sm.name)
		if err != nil {
			var scErr securecookie.Error
			if errors.As(err, &scErr) && scErr.IsDecode() {
				sm.log.Debug("ignoring undecodable session cookie", zap.Error(err))
			} else {
				sm.log.Warn("session load failed", zap.Error(err))
			}
			next.ServeHTTP(w, r)
			return
		}

		if isAuth, _ := sess.Values[isAuthKey].(bool); !isAuth {
			next.ServeHTTP(w, r)
			return
		}

		id := getString(sess, userIDKey)
		var u *SessionUser
		if sm.fetcher != nil {
			u = sm.fetcher.FetchUser(r.Context(), id)
		} else {
			u = &SessionUser{
				ID:    id,
				Name:  getString(sess, userName),
				Email: getString(sess, userEmail),
				Role:  getString(sess, userRole),
			}
		}
		if u != nil {
			r = withUser(r, u)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn answers 401 when no user is in context.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole answers 401 without a user and 403 when the user's role is
// not one of allowed. Roles compare case-insensitively.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if _, has := set[strings.ToLower(strings.TrimSpace(u.Role))]; !has {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
