package i18n

import "net/http"

const (
	// QueryParam selects a language for the current request and persists it.
	QueryParam = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "cpa_lang"
)

// Resolve determines the active language for r. The bool reports whether the
// choice came from the query string and should be persisted.
func Resolve(r *http.Request) (Language, bool) {
	if r == nil {
		return Default, false
	}

	if l, ok := Parse(r.URL.Query().Get(QueryParam)); ok {
		return l, true
	}

	if cookie, err := r.Cookie(CookieName); err == nil {
		if l, ok := Parse(cookie.Value); ok {
			return l, false
		}
	}

	return Default, false
}

// SetCookie stores the language for the rest of the browser session. A new
// session starts over in the default language.
func SetCookie(w http.ResponseWriter, l Language) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    l.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
