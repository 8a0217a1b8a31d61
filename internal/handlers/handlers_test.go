package handlers

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/RaidanPro1/CPA-YePortal/internal/ai"
	"github.com/RaidanPro1/CPA-YePortal/internal/auth"
	"github.com/RaidanPro1/CPA-YePortal/internal/config"
	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
	"github.com/RaidanPro1/CPA-YePortal/internal/report"
	"github.com/RaidanPro1/CPA-YePortal/internal/store"
	"github.com/RaidanPro1/CPA-YePortal/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminPassword = "Admin-Pass-2024"
	stubAnalysis      = "زيادة بنسبة 17.6% - خطورة متوسطة"
)

type testPortal struct {
	store  *store.Store
	server *httptest.Server
	client *http.Client
}

func newTestPortal(t *testing.T, analyzer ai.Analyzer) *testPortal {
	t.Helper()

	if analyzer == nil {
		analyzer = ai.AnalyzerFunc(func(context.Context, ai.ViolationInput) ai.Result {
			return ai.Ok(stubAnalysis)
		})
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.New()

	authenticator, err := auth.NewAuthenticator(s, config.AuthConfig{
		AdminPassword:     testAdminPassword,
		DonorPasswordless: true,
	})
	require.NoError(t, err)

	renderer, err := views.New()
	require.NoError(t, err)

	uploads := t.TempDir()
	h := New(Deps{
		Store:         s,
		Auth:          authenticator,
		Sessions:      auth.NewSessions(config.SessionConfig{Secret: "handlers-test", MaxAge: 3600}),
		Reports:       report.NewService(s, analyzer, logger, report.WithUploadsDir(uploads)),
		Views:         renderer,
		Logger:        logger,
		SlideInterval: 6 * time.Second,
		StaticDir:     "../../static",
		UploadsDir:    uploads,
	})

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testPortal{
		store:  s,
		server: srv,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (p *testPortal) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	resp, err := p.client.Get(p.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (p *testPortal) post(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	resp, err := p.client.PostForm(p.server.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (p *testPortal) login(t *testing.T, username, password string) {
	t.Helper()

	resp, _ := p.post(t, "/login", url.Values{"username": {username}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestAdminGuard_RedirectsThenRendersAfterDonorLogin(t *testing.T) {
	p := newTestPortal(t, nil)

	resp, _ := p.get(t, "/admin")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	p.login(t, "donor", "anything")

	resp, body := p.get(t, "/admin")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Dashboard Overview")

	donor, _ := p.store.UserByUsername("donor")
	assert.Contains(t, body, "Welcome, "+donor.Name)
}

func TestLogin_AdminCredentials(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "admin", testAdminPassword)

	resp, body := p.get(t, "/admin?tab=users")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "User Management")
}

func TestLogin_InvalidCredentialsShowInlineError(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown username", username: "ghost", password: "x"},
		{name: "admin with wrong password", username: "admin", password: "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPortal(t, nil)

			resp, body := p.post(t, "/login?lang=en", url.Values{"username": {tt.username}, "password": {tt.password}})
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Contains(t, body, "Invalid credentials")

			resp, _ = p.get(t, "/admin")
			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get("Location"))
		})
	}
}

func TestLoginPage_AuthenticatedGoesToAdmin(t *testing.T) {
	p := newTestPortal(t, nil)

	resp, _ := p.get(t, "/login")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	p.login(t, "donor", "")

	resp, _ = p.get(t, "/login")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestLogout(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "donor", "")

	resp, _ := p.post(t, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, _ = p.get(t, "/admin")
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAddProduct_VisibleOnAdminAndPrices(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "admin", testAdminPassword)

	resp, _ := p.post(t, "/admin/products", url.Values{
		"code": {"X1"}, "nameAr": {"منتج تجريبي"}, "nameEn": {"Test Product"}, "price": {"100"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin?tab=products", resp.Header.Get("Location"))

	_, body := p.get(t, "/admin?tab=products")
	assert.Contains(t, body, "<td>X1</td>")
	assert.Contains(t, body, `<td class="price">100</td>`)

	_, body = p.get(t, "/prices?lang=en")
	assert.Contains(t, body, "X1")
	assert.Contains(t, body, "Test Product")
	assert.Contains(t, body, `<td class="price">100</td>`)

	assert.Len(t, p.store.Products(), 7)
}

func TestAddProduct_MissingCodeIsRejected(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "admin", testAdminPassword)

	resp, _ := p.post(t, "/admin/products", url.Values{"nameEn": {"No code"}, "price": {"5"}})
	assert.Equal(t, "/admin?error=invalid&tab=products", resp.Header.Get("Location"))
	assert.Len(t, p.store.Products(), 6)

	_, body := p.get(t, "/admin?tab=products&error=invalid")
	assert.Contains(t, body, "Please fill in the required fields.")
}

func TestAdminUsers_AdminDeleteHiddenAndRefused(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "admin", testAdminPassword)

	admin, _ := p.store.UserByUsername("admin")
	donor, _ := p.store.UserByUsername("donor")

	_, body := p.get(t, "/admin?tab=users")
	assert.NotContains(t, body, "/admin/users/"+admin.ID+"/delete")
	assert.Contains(t, body, "/admin/users/"+donor.ID+"/delete")

	resp, _ := p.post(t, "/admin/users/"+admin.ID+"/delete", nil)
	assert.Equal(t, "/admin?error=protected&tab=users", resp.Header.Get("Location"))
	_, ok := p.store.UserByUsername("admin")
	assert.True(t, ok)

	resp, _ = p.post(t, "/admin/users/"+donor.ID+"/delete", nil)
	assert.Equal(t, "/admin?tab=users", resp.Header.Get("Location"))
	assert.Len(t, p.store.Users(), 1)
}

func TestAdminUsers_Add(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "admin", testAdminPassword)

	p.post(t, "/admin/users", url.Values{"username": {"inspector"}, "name": {"Field Inspector"}, "role": {"staff"}})
	_, ok := p.store.UserByUsername("inspector")
	assert.True(t, ok)

	resp, _ := p.post(t, "/admin/users", url.Values{"username": {""}, "name": {"Nameless"}})
	assert.Contains(t, resp.Header.Get("Location"), "error=invalid")
	assert.Len(t, p.store.Users(), 3)
}

func TestAdminNewsAndJobs(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "admin", testAdminPassword)

	p.post(t, "/admin/news", url.Values{"titleAr": {"خبر عاجل"}, "titleEn": {"Breaking"}})
	news := p.store.News()
	require.Len(t, news, 4)
	assert.Equal(t, "Breaking", news[0].TitleEn)

	_, body := p.get(t, "/news?lang=en")
	assert.Contains(t, body, "Breaking")

	p.post(t, "/admin/news/"+news[0].ID+"/delete", nil)
	assert.Len(t, p.store.News(), 3)

	p.post(t, "/admin/jobs", url.Values{"titleAr": {"محاسب"}, "titleEn": {"Accountant"}, "type": {"Volunteer"}})
	jobs := p.store.Jobs()
	require.Len(t, jobs, 3)
	assert.Equal(t, "Volunteer", string(jobs[2].Type))

	_, body = p.get(t, "/careers?lang=en")
	assert.Contains(t, body, "Accountant")

	p.post(t, "/admin/jobs/"+jobs[2].ID+"/delete", nil)
	assert.Len(t, p.store.Jobs(), 2)
}

func TestAdminSettings_UpdatesProfile(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "admin", testAdminPassword)

	profile := p.store.Profile()
	resp, _ := p.post(t, "/admin/settings", url.Values{
		"missionEn": {"Protect every shopper"},
		"missionAr": {profile.MissionAr},
		"email":     {"contact@cpa-ye.org"},
	})
	assert.Equal(t, "/admin?tab=settings", resp.Header.Get("Location"))

	_, body := p.get(t, "/about?lang=en")
	assert.Contains(t, body, "Protect every shopper")
	assert.Contains(t, body, "contact@cpa-ye.org")
}

func TestAdminTabs_UnknownFallsBackToDashboard(t *testing.T) {
	p := newTestPortal(t, nil)
	p.login(t, "donor", "")

	for _, tab := range Tabs {
		resp, _ := p.get(t, "/admin?tab="+tab.Slug())
		assert.Equal(t, http.StatusOK, resp.StatusCode, tab.Slug())
	}

	_, body := p.get(t, "/admin?tab=bogus")
	assert.Contains(t, body, "Dashboard Overview")
}

func TestReportSubmit(t *testing.T) {
	p := newTestPortal(t, nil)

	resp, body := p.post(t, "/report", url.Values{
		"productCode":   {"6291001"},
		"reportedPrice": {"1000"},
		"description":   {"Sold above the list price"},
		"lat":           {"13.5795"},
		"lng":           {"44.0209"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, stubAnalysis)

	reports := p.store.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, 850, reports[0].OfficialPrice)
	assert.Equal(t, "pending", string(reports[0].Status))
	require.NotNil(t, reports[0].Location)
	assert.InDelta(t, 13.5795, reports[0].Location.Lat, 1e-9)
}

func TestReportSubmit_FallbackAnalysis(t *testing.T) {
	p := newTestPortal(t, ai.AnalyzerFunc(func(context.Context, ai.ViolationInput) ai.Result {
		return ai.FallbackResult(ai.UnavailableText)
	}))

	resp, body := p.post(t, "/report", url.Values{
		"productCode": {"6291001"}, "reportedPrice": {"1000"}, "description": {"x"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, ai.UnavailableText)
	assert.Contains(t, body, "ai-fallback")
	assert.Equal(t, ai.UnavailableText, p.store.Reports()[0].AIAnalysis)
}

func TestReportSubmit_InvalidInputKeepsForm(t *testing.T) {
	p := newTestPortal(t, nil)

	resp, body := p.post(t, "/report?lang=en", url.Values{
		"productCode": {"6291001"}, "reportedPrice": {"abc"}, "description": {"kept text"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, i18n.Lookup(i18n.English, "report_invalid"))
	assert.Contains(t, body, "kept text")
	assert.Empty(t, p.store.Reports())
}

func TestReportSubmit_BadLocationIsDropped(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng string
	}{
		{name: "garbage", lat: "north", lng: "44"},
		{name: "NaN", lat: "NaN", lng: "nan"},
		{name: "infinite", lat: "13.5", lng: "Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPortal(t, nil)

			resp, _ := p.post(t, "/report", url.Values{
				"productCode": {"6291001"}, "reportedPrice": {"900"}, "description": {"x"},
				"lat": {tt.lat}, "lng": {tt.lng},
			})
			require.Equal(t, http.StatusOK, resp.StatusCode)

			reports := p.store.Reports()
			require.Len(t, reports, 1)
			assert.Nil(t, reports[0].Location)
		})
	}
}

func TestReportSubmit_WithEvidence(t *testing.T) {
	p := newTestPortal(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("productCode", "6291002"))
	require.NoError(t, mw.WriteField("reportedPrice", "7000"))
	require.NoError(t, mw.WriteField("description", "Rice overpriced"))
	require.NoError(t, mw.WriteField("shopName", "Al-Amal Market"))
	fw, err := mw.CreateFormFile("evidence", "shelf.jpg")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("jpeg"))
	require.NoError(t, mw.Close())

	resp, err := p.client.Post(p.server.URL+"/report", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reports := p.store.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, "Al-Amal Market", reports[0].ShopName)
	require.NotEmpty(t, reports[0].EvidenceImage)

	resp, body := p.get(t, reports[0].EvidenceImage)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jpeg", body)
}

func TestAdminReportsTab_DotsFollowFixedPattern(t *testing.T) {
	p := newTestPortal(t, nil)

	for _, code := range []string{"6291001", "6291002"} {
		p.post(t, "/report", url.Values{"productCode": {code}, "reportedPrice": {"1"}, "description": {"x"}})
	}

	p.login(t, "admin", testAdminPassword)
	_, body := p.get(t, "/admin?tab=reports")

	assert.Contains(t, body, "Interactive Reports Map")
	assert.Contains(t, body, "top: 30%; left: 20%")
	assert.Contains(t, body, "top: 42%; left: 38%")
	assert.Equal(t, 2, strings.Count(body, `class="map-dot"`))
}

func TestToggleLanguage(t *testing.T) {
	p := newTestPortal(t, nil)

	_, body := p.get(t, "/prices")
	assert.Contains(t, body, `<html lang="ar" dir="rtl">`)

	resp, _ := p.post(t, "/lang/toggle", url.Values{"redirect": {"/prices"}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/prices", resp.Header.Get("Location"))

	_, body = p.get(t, "/prices")
	assert.Contains(t, body, `<html lang="en" dir="ltr">`)

	p.post(t, "/lang/toggle", url.Values{"redirect": {"/prices"}})
	_, body = p.get(t, "/prices")
	assert.Contains(t, body, `<html lang="ar" dir="rtl">`)
}

func TestSafeRedirect(t *testing.T) {
	tests := map[string]string{
		"":                   "/",
		"/about":             "/about",
		"//evil.example":     "/",
		"/\\evil.example":    "/",
		"https://evil.test/": "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, safeRedirect(in), in)
	}
}

func TestPublicPagesRender(t *testing.T) {
	p := newTestPortal(t, nil)

	for _, path := range []string{"/", "/about", "/news", "/prices", "/careers", "/media", "/report", "/login"} {
		resp, body := p.get(t, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, body, "</html>", path)
	}
}

func TestHomeShowsSeedContent(t *testing.T) {
	p := newTestPortal(t, nil)

	_, body := p.get(t, "/?lang=en")
	assert.Contains(t, body, i18n.Lookup(i18n.English, "heroTitle1"))
	assert.Contains(t, body, i18n.Lookup(i18n.English, "services_title"))
	assert.Contains(t, body, `data-interval="6000"`)
}

func TestNotFoundAndHealthz(t *testing.T) {
	p := newTestPortal(t, nil)

	resp, _ := p.get(t, "/does-not-exist")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body := p.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestTabs(t *testing.T) {
	seen := map[string]bool{}
	for _, tab := range Tabs {
		assert.NotEmpty(t, tab.Label())
		assert.False(t, seen[tab.Slug()])
		seen[tab.Slug()] = true
		assert.Equal(t, tab, ParseTab(tab.Slug()))
	}
	assert.Equal(t, TabDashboard, ParseTab("nope"))
	assert.Panics(t, func() { _ = Tab(99).Slug() })
}
