package middleware

import (
	"net/http"
	"slices"

	"github.com/RaidanPro1/CPA-YePortal/internal/auth"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"
)

// RequireAuth admits signed-in users whose role is listed in roles (any role when
// roles is empty). Anonymous visitors are sent to /login, other roles to /.
func RequireAuth(sessions *auth.Sessions, roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := sessions.Current(r)
			if user == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if len(roles) > 0 && !slices.Contains(roles, user.Role) {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

// CurrentUser exposes the optional signed-in user to every handler, guarded or not.
func CurrentUser(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := sessions.Current(r); user != nil {
				r = r.WithContext(auth.WithUser(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}
