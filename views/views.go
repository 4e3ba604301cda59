// Package views renders the portfolio pages.
//
// Pages are html/template files embedded in the binary and exposed as
// templ components, so handlers render them through Context.Render like
// any other component.
package views

import (
	"cmp"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/charlieallen/portfolio/pkg/contact"
	"github.com/charlieallen/portfolio/pkg/content"
)

//go:embed templates static
var files embed.FS

// StaticPrefix is the URL prefix the static assets are served under.
const StaticPrefix = "/static/"

const layoutName = "layout.html"

const (
	pageHome     = "home"
	pageAbout    = "about"
	pageProjects = "projects"
	pageContact  = "contact"
	pageError    = "error"
)

// Routes lists the pages reachable from the navigation, in sitemap order.
var Routes = []string{"/", "/about", "/projects", "/contact"}

// Views renders pages for one site.
// It is immutable after New and safe for concurrent use.
type Views struct {
	site     *content.Site
	pages    map[string]*template.Template
	versions map[string]string
	endpoint string
	rules    contact.Rules
	now      func() time.Time
}

// Option configures Views.
type Option func(*Views)

// WithContactEndpoint makes the contact form post JSON to url from the
// browser instead of submitting to this server. Used for static hosting.
func WithContactEndpoint(url string) Option {
	return func(v *Views) {
		v.endpoint = url
	}
}

// WithFormRules sets the limits advertised to the browser.
func WithFormRules(r contact.Rules) Option {
	return func(v *Views) {
		v.rules = r
	}
}

// WithClock replaces time.Now, which only feeds the footer year.
func WithClock(fn func() time.Time) Option {
	return func(v *Views) {
		if fn != nil {
			v.now = fn
		}
	}
}

// New parses the embedded templates for site.
func New(site *content.Site, opts ...Option) (*Views, error) {
	if site == nil {
		return nil, ErrMissingSite
	}

	v := &Views{
		site:  site,
		pages: make(map[string]*template.Template),
		rules: contact.FormRules(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	versions, err := assetVersions()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	v.versions = versions

	base, err := template.New(layoutName).
		Funcs(template.FuncMap{
			"join":  strings.Join,
			"asset": v.asset,
		}).
		ParseFS(files, "templates/"+layoutName, "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	for _, name := range []string{pageHome, pageAbout, pageProjects, pageContact, pageError} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
		}
		page, err := clone.ParseFS(files, "templates/pages/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
		}
		v.pages[name] = page
	}

	return v, nil
}

// Site returns the content the views render.
func (v *Views) Site() *content.Site {
	return v.site
}

// Static returns the embedded assets, rooted so that "site.css" is at the top.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err) // embedded directory is always present
	}
	return sub
}

// pageData is the value every template executes with.
type pageData struct {
	Site        *content.Site
	Path        string
	Title       string
	Description string
	Year        int
	Endpoint    string
	Rules       contact.Rules
	Form        ContactForm

	Status    int
	Heading   string
	Message   string
	RequestID string
}

func (v *Views) data(p, title, description string) pageData {
	return pageData{
		Site:        v.site,
		Path:        p,
		Title:       v.site.PageTitle(title),
		Description: cmp.Or(description, v.site.Meta.Description),
		Year:        v.now().Year(),
		Endpoint:    v.endpoint,
		Rules:       v.rules,
	}
}

func (v *Views) render(page string, data pageData) templ.Component {
	return templ.FromGoHTML(v.pages[page], data)
}

func (v *Views) Home() templ.Component {
	return v.render(pageHome, v.data("/", "", ""))
}

func (v *Views) About() templ.Component {
	about := v.site.About
	return v.render(pageAbout, v.data("/about", cmp.Or(about.Title, "About"), about.Description))
}

func (v *Views) Projects() templ.Component {
	return v.render(pageProjects, v.data("/projects", "Projects", ""))
}

// Contact renders the contact page with form state.
func (v *Views) Contact(form ContactForm) templ.Component {
	d := v.data("/contact", "Contact", "")
	d.Form = form
	return v.render(pageContact, d)
}

// ContactFormPartial renders only the form, for HTMX swaps.
func (v *Views) ContactFormPartial(form ContactForm) templ.Component {
	d := v.data("/contact", "Contact", "")
	d.Form = form
	return templ.FromGoHTML(v.pages[pageContact].Lookup("contact-form"), d)
}

// NotFound renders the 404 page.
func (v *Views) NotFound() templ.Component {
	return v.Error(http.StatusNotFound, "", "")
}

// Error renders an error page. An empty message falls back to a stock one.
func (v *Views) Error(status int, message, requestID string) templ.Component {
	heading := "Something went wrong"
	switch status {
	case http.StatusNotFound:
		heading = "Page not found"
		message = cmp.Or(message, "The page you are looking for doesn't exist or has moved.")
	case http.StatusMethodNotAllowed:
		heading = "Method not allowed"
	case http.StatusTooManyRequests:
		heading = "Slow down"
		message = cmp.Or(message, "Too many requests. Please try again in a few minutes.")
	}
	if status >= http.StatusInternalServerError {
		message = cmp.Or(message, "Please try again later.")
	}

	d := v.data("", heading, "")
	d.Status = status
	d.Heading = heading
	d.Message = message
	d.RequestID = requestID
	return v.render(pageError, d)
}

// Page returns the component for a navigable path.
func (v *Views) Page(p string) (templ.Component, bool) {
	switch p {
	case "/":
		return v.Home(), true
	case "/about":
		return v.About(), true
	case "/projects":
		return v.Projects(), true
	case "/contact":
		return v.Contact(ContactForm{}), true
	}
	return nil, false
}

// asset returns the versioned URL of a static file.
func (v *Views) asset(name string) string {
	u := StaticPrefix + name
	if ver, ok := v.versions[name]; ok {
		u += "?v=" + ver
	}
	return u
}

func assetVersions() (map[string]string, error) {
	versions := make(map[string]string)
	err := fs.WalkDir(files, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := files.ReadFile(p)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		versions[strings.TrimPrefix(p, "static/")] = hex.EncodeToString(sum[:4])
		return nil
	})
	return versions, err
}

// AssetPath returns the path of a static asset relative to the site root.
func AssetPath(name string) string {
	return path.Join(strings.Trim(StaticPrefix, "/"), name)
}
