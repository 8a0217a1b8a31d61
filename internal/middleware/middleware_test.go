package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RaidanPro1/CPA-YePortal/internal/auth"
	"github.com/RaidanPro1/CPA-YePortal/internal/config"
	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessions() *auth.Sessions {
	return auth.NewSessions(config.SessionConfig{Secret: "middleware-test", MaxAge: 600})
}

// signedInRequest returns a request carrying a session cookie for u.
func signedInRequest(t *testing.T, s *auth.Sessions, u models.User) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, s.Login(rec, httptest.NewRequest(http.MethodPost, "/login", nil), u))

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFrom(r.Context())
	if u == nil {
		_, _ = w.Write([]byte("anonymous"))
		return
	}
	_, _ = w.Write([]byte(u.Username))
}

func TestRequireAuth(t *testing.T) {
	s := newSessions()
	guard := RequireAuth(s, models.RoleAdmin, models.RoleDonor)(http.HandlerFunc(echoUser))

	tests := []struct {
		name     string
		req      *http.Request
		status   int
		location string
		body     string
	}{
		{
			name:     "anonymous goes to login",
			req:      httptest.NewRequest(http.MethodGet, "/admin", nil),
			status:   http.StatusSeeOther,
			location: "/login",
		},
		{
			name:     "role not allowed goes home",
			req:      signedInRequest(t, s, models.User{Username: "clerk", Role: models.RoleStaff}),
			status:   http.StatusSeeOther,
			location: "/",
		},
		{
			name:   "donor is admitted",
			req:    signedInRequest(t, s, models.User{Username: "donor", Role: models.RoleDonor}),
			status: http.StatusOK,
			body:   "donor",
		},
		{
			name:   "admin is admitted",
			req:    signedInRequest(t, s, models.User{Username: "admin", Role: models.RoleAdmin}),
			status: http.StatusOK,
			body:   "admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			guard.ServeHTTP(rec, tt.req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get("Location"))
			}
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRequireAuth_AnyRole(t *testing.T) {
	s := newSessions()
	guard := RequireAuth(s)(http.HandlerFunc(echoUser))

	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, signedInRequest(t, s, models.User{Username: "clerk", Role: models.RoleStaff}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "clerk", rec.Body.String())
}

func TestCurrentUser(t *testing.T) {
	s := newSessions()
	h := CurrentUser(s)(http.HandlerFunc(echoUser))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "anonymous", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, signedInRequest(t, s, models.User{Username: "donor", Role: models.RoleDonor}))
	assert.Equal(t, "donor", rec.Body.String())
}

func TestLanguage(t *testing.T) {
	h := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(LanguageFrom(r.Context())))
	}))

	t.Run("default is arabic without cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "ar", rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("cookie is honoured", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		assert.Equal(t, "en", rec.Body.String())
	})

	t.Run("query is persisted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?lang=en", nil))

		assert.Equal(t, "en", rec.Body.String())
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, i18n.CookieName, cookies[0].Name)
		assert.Equal(t, "en", cookies[0].Value)
	})
}

func TestLanguageFromEmptyContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, i18n.Arabic, LanguageFrom(r.Context()))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := chimiddleware.RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"uri":"/missing"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"request_id"`)
	assert.Contains(t, out, `"query":"x=1"`)
}

func TestNoCache(t *testing.T) {
	rec := httptest.NewRecorder()
	NoCache(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "0", rec.Header().Get("Expires"))
}
