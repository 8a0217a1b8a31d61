package middleware

import (
	"context"
	"net/http"

	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
)

type languageKey struct{}

// Language resolves the active language for each request. A ?lang= choice is
// written back to the preference cookie.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang, persist := i18n.Resolve(r)
		if persist {
			i18n.SetCookie(w, lang)
		}
		next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
	})
}

func WithLanguage(ctx context.Context, l i18n.Language) context.Context {
	return context.WithValue(ctx, languageKey{}, l)
}

// LanguageFrom returns the request language, i18n.Default when none was resolved.
func LanguageFrom(ctx context.Context) i18n.Language {
	if l, ok := ctx.Value(languageKey{}).(i18n.Language); ok {
		return l
	}
	return i18n.Default
}
