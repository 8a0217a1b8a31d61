package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/RaidanPro1/CPA-YePortal/internal/auth"
	"github.com/RaidanPro1/CPA-YePortal/internal/middleware"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"
	"github.com/RaidanPro1/CPA-YePortal/internal/report"
	"github.com/RaidanPro1/CPA-YePortal/internal/store"
	"github.com/RaidanPro1/CPA-YePortal/internal/views"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	store         *store.Store
	auth          *auth.Authenticator
	sessions      *auth.Sessions
	reports       *report.Service
	views         *views.Renderer
	logger        *slog.Logger
	slideInterval time.Duration
	staticDir     string
	uploadsDir    string
}

// Deps lists what the handlers are built from.
type Deps struct {
	Store         *store.Store
	Auth          *auth.Authenticator
	Sessions      *auth.Sessions
	Reports       *report.Service
	Views         *views.Renderer
	Logger        *slog.Logger
	SlideInterval time.Duration
	StaticDir     string
	UploadsDir    string
}

func New(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.StaticDir == "" {
		d.StaticDir = "static"
	}
	if d.UploadsDir == "" {
		d.UploadsDir = "uploads"
	}
	return &Handler{
		store:         d.Store,
		auth:          d.Auth,
		sessions:      d.Sessions,
		reports:       d.Reports,
		views:         d.Views,
		logger:        d.Logger,
		slideInterval: d.SlideInterval,
		staticDir:     d.StaticDir,
		uploadsDir:    d.UploadsDir,
	}
}

// Routes builds the portal router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(h.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Language)
	r.Use(middleware.CurrentUser(h.sessions))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir))))

	r.NotFound(h.NotFound)
	r.Get("/healthz", h.Healthz)

	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/news", h.News)
	r.Get("/prices", h.Prices)
	r.Get("/careers", h.Careers)
	r.Get("/media", h.Media)
	r.Get("/report", h.ReportPage)
	r.Post("/report", h.ReportSubmit)
	r.Post("/lang/toggle", h.ToggleLanguage)

	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.sessions, models.RoleAdmin, models.RoleDonor))
		r.Get("/admin", h.Admin)
		r.Post("/admin/users", h.AddUser)
		r.Post("/admin/users/{id}/delete", h.DeleteUser)
		r.Post("/admin/news", h.AddNews)
		r.Post("/admin/news/{id}/delete", h.DeleteNews)
		r.Post("/admin/products", h.AddProduct)
		r.Post("/admin/products/{id}/delete", h.DeleteProduct)
		r.Post("/admin/jobs", h.AddJob)
		r.Post("/admin/jobs/{id}/delete", h.DeleteJob)
		r.Post("/admin/settings", h.SaveSettings)
	})

	return r
}

// page assembles the shared template data for r.
func (h *Handler) page(r *http.Request, title string, data any) views.Page {
	return views.Page{
		Lang:    middleware.LanguageFrom(r.Context()),
		Title:   title,
		Path:    r.URL.Path,
		User:    auth.UserFrom(r.Context()),
		Profile: h.store.Profile(),
		Data:    data,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, p views.Page) {
	if err := h.views.Render(w, status, name, p); err != nil {
		h.logger.ErrorContext(r.Context(), "render page",
			slog.String("page", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	p := h.page(r, "404", nil)
	h.render(w, r, http.StatusNotFound, "notfound", p)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
