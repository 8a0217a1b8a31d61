package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/RaidanPro1/CPA-YePortal/internal/content"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"
	"github.com/RaidanPro1/CPA-YePortal/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// Tab is one section of the admin panel.
type Tab int

const (
	TabDashboard Tab = iota
	TabUsers
	TabContent
	TabProducts
	TabReports
	TabHR
	TabCRM
	TabSettings
)

// Tabs lists the admin sections in sidebar order.
var Tabs = []Tab{TabDashboard, TabUsers, TabContent, TabProducts, TabReports, TabHR, TabCRM, TabSettings}

func (t Tab) Slug() string {
	switch t {
	case TabDashboard:
		return "dashboard"
	case TabUsers:
		return "users"
	case TabContent:
		return "content"
	case TabProducts:
		return "products"
	case TabReports:
		return "reports"
	case TabHR:
		return "hr"
	case TabCRM:
		return "crm"
	case TabSettings:
		return "settings"
	}
	panic(fmt.Sprintf("unhandled admin tab %d", int(t)))
}

func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabUsers:
		return "Users"
	case TabContent:
		return "News Content"
	case TabProducts:
		return "Products & Prices"
	case TabReports:
		return "Reports Map"
	case TabHR:
		return "HR Management"
	case TabCRM:
		return "Donor Relations"
	case TabSettings:
		return "Settings"
	}
	panic(fmt.Sprintf("unhandled admin tab %d", int(t)))
}

// ParseTab maps a slug back to its tab. Unknown slugs select the dashboard.
func ParseTab(slug string) Tab {
	for _, t := range Tabs {
		if t.Slug() == slug {
			return t
		}
	}
	return TabDashboard
}

// Error codes carried on the redirect after a rejected admin form.
const (
	errInvalid   = "invalid"
	errProtected = "protected"
	errNotFound  = "notfound"
)

var adminErrors = map[string]string{
	errInvalid:   "Please fill in the required fields.",
	errProtected: "The admin account cannot be deleted.",
	errNotFound:  "That record no longer exists.",
}

type tabLink struct {
	Slug   string
	Label  string
	Active bool
}

type adminView struct {
	Tab      Tab
	Tabs     []tabLink
	Error    string
	Users    []models.User
	Products []models.Product
	News     []models.NewsItem
	Jobs     []models.JobOpportunity
	JobTypes []models.JobType
	Reports  []models.ViolationReport
	CRM      models.CRMStats
	Profile  models.OrganizationProfile
	MapImage string
}

func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	tab := ParseTab(r.URL.Query().Get("tab"))

	links := make([]tabLink, 0, len(Tabs))
	for _, t := range Tabs {
		links = append(links, tabLink{Slug: t.Slug(), Label: t.Label(), Active: t == tab})
	}

	data := adminView{
		Tab:      tab,
		Tabs:     links,
		Error:    adminErrors[r.URL.Query().Get("error")],
		Users:    h.store.Users(),
		Products: h.store.Products(),
		News:     h.store.News(),
		Jobs:     h.store.Jobs(),
		JobTypes: models.JobTypes,
		Reports:  h.store.Reports(),
		CRM:      h.store.CRMStats(),
		Profile:  h.store.Profile(),
		MapImage: content.ReportsMapImage,
	}

	h.render(w, r, http.StatusOK, "admin", h.page(r, tab.Label(), data))
}

// backToTab answers an admin form with a redirect to its tab, optionally flagging errCode.
func backToTab(w http.ResponseWriter, r *http.Request, tab Tab, errCode string) {
	q := url.Values{"tab": {tab.Slug()}}
	if errCode != "" {
		q.Set("error", errCode)
	}
	http.Redirect(w, r, "/admin?"+q.Encode(), http.StatusSeeOther)
}

// mutationError classifies a store error into a redirect error code.
func (h *Handler) mutationError(r *http.Request, action string, err error) string {
	if err == nil {
		return ""
	}
	h.logger.InfoContext(r.Context(), "admin change rejected",
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
	switch {
	case errors.Is(err, store.ErrProtectedUser):
		return errProtected
	case errors.Is(err, store.ErrNotFound):
		return errNotFound
	default:
		return errInvalid
	}
}

func form(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func (h *Handler) AddUser(w http.ResponseWriter, r *http.Request) {
	_, err := h.store.AddUser(store.NewUser{
		Username: form(r, "username"),
		Name:     form(r, "name"),
		Role:     models.Role(form(r, "role")),
	})
	backToTab(w, r, TabUsers, h.mutationError(r, "add user", err))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteUser(chi.URLParam(r, "id"))
	backToTab(w, r, TabUsers, h.mutationError(r, "delete user", err))
}

func (h *Handler) AddNews(w http.ResponseWriter, r *http.Request) {
	h.store.AddNews(store.NewArticle{
		TitleAr: form(r, "titleAr"),
		TitleEn: form(r, "titleEn"),
		DescAr:  form(r, "descAr"),
		DescEn:  form(r, "descEn"),
	})
	backToTab(w, r, TabContent, "")
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteNews(chi.URLParam(r, "id"))
	backToTab(w, r, TabContent, h.mutationError(r, "delete news", err))
}

func (h *Handler) AddProduct(w http.ResponseWriter, r *http.Request) {
	price := 0
	if raw := form(r, "price"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			backToTab(w, r, TabProducts, errInvalid)
			return
		}
		price = p
	}

	_, err := h.store.AddProduct(store.NewProduct{
		Code:   form(r, "code"),
		NameAr: form(r, "nameAr"),
		NameEn: form(r, "nameEn"),
		Price:  price,
	})
	backToTab(w, r, TabProducts, h.mutationError(r, "add product", err))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteProduct(chi.URLParam(r, "id"))
	backToTab(w, r, TabProducts, h.mutationError(r, "delete product", err))
}

func (h *Handler) AddJob(w http.ResponseWriter, r *http.Request) {
	_, err := h.store.AddJob(store.NewJob{
		TitleAr: form(r, "titleAr"),
		TitleEn: form(r, "titleEn"),
		Type:    models.JobType(form(r, "type")),
	})
	backToTab(w, r, TabHR, h.mutationError(r, "add job", err))
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteJob(chi.URLParam(r, "id"))
	backToTab(w, r, TabHR, h.mutationError(r, "delete job", err))
}

// SaveSettings replaces the organisation profile with the submitted fields.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	h.store.UpdateProfile(models.OrganizationProfile{
		MissionAr: form(r, "missionAr"),
		MissionEn: form(r, "missionEn"),
		VisionAr:  form(r, "visionAr"),
		VisionEn:  form(r, "visionEn"),
		AboutAr:   form(r, "aboutAr"),
		AboutEn:   form(r, "aboutEn"),
		Phone:     form(r, "phone"),
		Email:     form(r, "email"),
		AddressAr: form(r, "addressAr"),
		AddressEn: form(r, "addressEn"),
	})
	backToTab(w, r, TabSettings, "")
}
