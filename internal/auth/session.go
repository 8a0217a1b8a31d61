package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/RaidanPro1/CPA-YePortal/internal/config"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const (
	SessionName = "session"
	// UserKey holds the JSON encoded signed-in user inside the session.
	UserKey = "cpa_user"
)

type Sessions struct {
	store sessions.Store
}

func NewSessions(cfg config.SessionConfig) *Sessions {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Sessions{store: store}
}

// Login stores u in the session cookie.
func (s *Sessions) Login(w http.ResponseWriter, r *http.Request, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "encode session user")
	}

	session, _ := s.store.Get(r, SessionName)
	session.Values[UserKey] = string(raw)

	return errors.Wrap(session.Save(r, w), "save session")
}

// Logout forgets the signed-in user.
func (s *Sessions) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, SessionName)
	delete(session.Values, UserKey)
	session.Options.MaxAge = -1

	return errors.Wrap(session.Save(r, w), "clear session")
}

// Current restores the signed-in user. Absent or unreadable data means nobody is signed in.
func (s *Sessions) Current(r *http.Request) *models.User {
	session, err := s.store.Get(r, SessionName)
	if err != nil {
		return nil
	}

	raw, ok := session.Values[UserKey].(string)
	if !ok || raw == "" {
		return nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}

	return &u
}

func (s *Sessions) IsAuthenticated(r *http.Request) bool {
	return s.Current(r) != nil
}

type ctxKey struct{}

// WithUser attaches the signed-in user to ctx.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFrom returns the user placed by WithUser, or nil.
func UserFrom(ctx context.Context) *models.User {
	u, _ := ctx.Value(ctxKey{}).(*models.User)
	return u
}
