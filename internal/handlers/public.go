package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/RaidanPro1/CPA-YePortal/internal/ai"
	"github.com/RaidanPro1/CPA-YePortal/internal/content"
	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
	"github.com/RaidanPro1/CPA-YePortal/internal/middleware"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"
	"github.com/RaidanPro1/CPA-YePortal/internal/report"
	"github.com/RaidanPro1/CPA-YePortal/internal/storage"

	"github.com/pkg/errors"
)

const maxReportUpload = storage.MaxFileSize + 1<<20

type homeView struct {
	SlideInterval time.Duration
	Rates         []models.CurrencyRate
	Slides        []models.Slide
	Stats         []models.DashboardStat
	News          []models.NewsItem
	Services      []models.ServiceItem
	Rights        []models.RightItem
	Publications  []models.Publication
	Partners      []models.Partner
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := homeView{
		SlideInterval: h.slideInterval,
		Rates:         h.store.CurrencyRates(),
		Slides:        content.Slides(),
		Stats:         content.DashboardStats(),
		News:          h.store.News(),
		Services:      content.Services(),
		Rights:        content.Rights(),
		Publications:  content.Publications(),
		Partners:      h.store.Partners(),
	}
	h.render(w, r, http.StatusOK, "home", h.page(r, "", data))
}

func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about", h.page(r, i18n.Lookup(middleware.LanguageFrom(r.Context()), "about"), nil))
}

func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "news", h.page(r, i18n.Lookup(middleware.LanguageFrom(r.Context()), "news"), h.store.News()))
}

func (h *Handler) Prices(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "prices", h.page(r, i18n.Lookup(middleware.LanguageFrom(r.Context()), "prices"), h.store.Products()))
}

func (h *Handler) Careers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "careers", h.page(r, i18n.Lookup(middleware.LanguageFrom(r.Context()), "careers"), h.store.Jobs()))
}

func (h *Handler) Media(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "media", h.page(r, i18n.Lookup(middleware.LanguageFrom(r.Context()), "library"), h.store.Media()))
}

// reportForm echoes submitted values back into the form after a rejection.
type reportForm struct {
	ProductCode   string
	ReportedPrice string
	Description   string
	ShopName      string
	Lat           string
	Lng           string
}

type reportView struct {
	Products  []models.Product
	Form      reportForm
	Error     string
	Submitted bool
	Result    ai.Result
}

func (h *Handler) ReportPage(w http.ResponseWriter, r *http.Request) {
	h.renderReport(w, r, http.StatusOK, reportView{})
}

func (h *Handler) renderReport(w http.ResponseWriter, r *http.Request, status int, v reportView) {
	lang := middleware.LanguageFrom(r.Context())
	v.Products = h.store.Products()
	h.render(w, r, status, "report", h.page(r, i18n.Lookup(lang, "report_title"), v))
}

func (h *Handler) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LanguageFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxReportUpload)
	if err := r.ParseMultipartForm(maxReportUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.renderReport(w, r, http.StatusRequestEntityTooLarge, reportView{Error: i18n.Lookup(lang, "evidence_invalid")})
		return
	}

	form := reportForm{
		ProductCode:   strings.TrimSpace(r.FormValue("productCode")),
		ReportedPrice: strings.TrimSpace(r.FormValue("reportedPrice")),
		Description:   strings.TrimSpace(r.FormValue("description")),
		ShopName:      strings.TrimSpace(r.FormValue("shopName")),
		Lat:           r.FormValue("lat"),
		Lng:           r.FormValue("lng"),
	}

	// Unparsable prices stay zero and fail validation.
	price, _ := strconv.ParseFloat(form.ReportedPrice, 64)

	in := report.Input{
		ProductCode:   form.ProductCode,
		ReportedPrice: price,
		Description:   form.Description,
		ShopName:      form.ShopName,
		Location:      models.ParseGeoPoint(form.Lat, form.Lng),
	}

	if file, fh, err := r.FormFile("evidence"); err == nil {
		file.Close()
		if fh.Filename != "" && fh.Size > 0 {
			in.Evidence = fh
		}
	}

	rep, result, err := h.reports.Submit(r.Context(), lang, in)
	switch {
	case errors.Is(err, report.ErrInvalidEvidence):
		h.renderReport(w, r, http.StatusUnprocessableEntity, reportView{Form: form, Error: i18n.Lookup(lang, "evidence_invalid")})
		return
	case errors.Is(err, report.ErrInvalidInput):
		h.renderReport(w, r, http.StatusUnprocessableEntity, reportView{Form: form, Error: i18n.Lookup(lang, "report_invalid")})
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "submit report", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.logger.DebugContext(r.Context(), "report stored", slog.String("id", rep.ID))
	h.renderReport(w, r, http.StatusOK, reportView{Submitted: true, Result: result})
}

// ToggleLanguage flips the language cookie and returns to the page the visitor was on.
func (h *Handler) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	next := middleware.LanguageFrom(r.Context()).Toggle()
	i18n.SetCookie(w, next)
	http.Redirect(w, r, safeRedirect(r.FormValue("redirect")), http.StatusSeeOther)
}

// safeRedirect keeps redirects on this site.
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
