// Package views renders the portal's server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/RaidanPro1/CPA-YePortal/internal/i18n"
	"github.com/RaidanPro1/CPA-YePortal/internal/models"

	"github.com/pkg/errors"
)

//go:embed templates
var templatesFS embed.FS

const partialsGlob = "templates/partials/*.html"

// Page is the data every template receives. Data carries the page-specific payload.
type Page struct {
	Lang    i18n.Language
	Title   string
	Path    string
	User    *models.User
	Profile models.OrganizationProfile
	Data    any
}

func (p Page) Dir() i18n.Direction {
	return p.Lang.Dir()
}

// T translates key into the page language.
func (p Page) T(key string) string {
	return i18n.Lookup(p.Lang, key)
}

// Pick selects the literal variant matching the page language.
func (p Page) Pick(ar, en string) string {
	return i18n.Pick(p.Lang, ar, en)
}

func (p Page) Num(n any) string {
	return i18n.FormatNumber(p.Lang, n)
}

// Text prefers the literal variant of a bilingual field and falls back to the table key.
func (p Page) Text(key, ar, en string) string {
	if v := p.Pick(ar, en); v != "" {
		return v
	}
	return p.T(key)
}

// ToggleLabel names the other language on the switcher button.
func (p Page) ToggleLabel() string {
	if p.Lang == i18n.Arabic {
		return "En"
	}
	return "عربي"
}

var funcs = template.FuncMap{
	"glyph": func(i models.Icon) string { return i.Glyph() },
	"dotTop": func(i int) int {
		return 30 + (i*12)%60
	},
	"dotLeft": func(i int) int {
		return 20 + (i*18)%70
	},
	"millis": func(d time.Duration) int64 { return d.Milliseconds() },
	"initial": func(s string) string {
		for _, r := range s {
			return string(r)
		}
		return ""
	},
}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page under templates/ together with the shared partials.
func New() (*Renderer, error) {
	names, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "list templates")
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(names))}
	for _, name := range names {
		page := strings.TrimSuffix(strings.TrimPrefix(name, "templates/"), ".html")

		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templatesFS, partialsGlob, name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render writes page with status. Execution happens into a buffer first so a
// template failure never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, p Page) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return errors.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, page+".html", p); err != nil {
		return errors.Wrapf(err, "execute %s", page)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
