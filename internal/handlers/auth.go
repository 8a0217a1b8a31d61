package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
	"github.com/RaidanPro1/CPA-YePortal/internal/middleware"
)

type loginView struct {
	Username string
	Error    string
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.sessions.IsAuthenticated(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	lang := middleware.LanguageFrom(r.Context())
	h.render(w, r, http.StatusOK, "login", h.page(r, i18n.Lookup(lang, "login"), loginView{}))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LanguageFrom(r.Context())
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.auth.Login(username, password)
	if err != nil {
		h.logger.InfoContext(r.Context(), "login rejected", slog.String("username", username))
		h.render(w, r, http.StatusUnauthorized, "login", h.page(r, i18n.Lookup(lang, "login"), loginView{
			Username: username,
			Error:    i18n.Lookup(lang, "invalid_credentials"),
		}))
		return
	}

	if err := h.sessions.Login(w, r, user); err != nil {
		h.logger.ErrorContext(r.Context(), "save session", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(r.Context(), "login",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		h.logger.ErrorContext(r.Context(), "clear session", slog.String("error", err.Error()))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
