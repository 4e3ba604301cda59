package content

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Site holds everything the pages render.
type Site struct {
	Name       string       `yaml:"name"`
	Role       string       `yaml:"role"`
	Intro      string       `yaml:"intro"`
	BaseURL    string       `yaml:"base_url"`
	Meta       Meta         `yaml:"meta"`
	Nav        []Link       `yaml:"nav"`
	Social     []Link       `yaml:"social"`
	Highlights []Highlight  `yaml:"highlights"`
	Skills     []SkillGroup `yaml:"skills"`
	Contact    ContactInfo  `yaml:"contact"`

	About    Page      `yaml:"-"`
	Projects []Project `yaml:"-"`
}

// Meta is the head metadata shared by every page.
type Meta struct {
	Title         string    `yaml:"title"`
	TitleTemplate string    `yaml:"title_template"`
	Description   string    `yaml:"description"`
	Keywords      []string  `yaml:"keywords"`
	OpenGraph     OpenGraph `yaml:"open_graph"`
}

type OpenGraph struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	SiteName    string `yaml:"site_name"`
	Type        string `yaml:"type"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// External reports whether the link leaves the site.
func (l Link) External() bool {
	return strings.HasPrefix(l.URL, "http://") || strings.HasPrefix(l.URL, "https://")
}

type Highlight struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type ContactInfo struct {
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
}

// Page is a markdown document with a title block.
type Page struct {
	Title       string        `yaml:"title"`
	Heading     string        `yaml:"heading"`
	Description string        `yaml:"description"`
	Body        template.HTML `yaml:"-"`
}

// Project is one card on the projects page.
type Project struct {
	Slug         string         `yaml:"-"`
	Title        string         `yaml:"title"`
	Order        int            `yaml:"order"`
	Technologies []string       `yaml:"technologies"`
	GitHubURL    string         `yaml:"github"`
	DemoURL      string         `yaml:"demo"`
	Schema       map[string]any `yaml:"schema"` // JSON-LD, emitted as-is
	Summary      string         `yaml:"-"`
	Body         template.HTML  `yaml:"-"`
}

// PageTitle applies the title template; an empty title yields the default title.
func (s *Site) PageTitle(title string) string {
	if title == "" || s.Meta.TitleTemplate == "" {
		return cmp.Or(title, s.Meta.Title)
	}
	return strings.ReplaceAll(s.Meta.TitleTemplate, "%s", title)
}

// URL returns the absolute URL of a site path.
func (s *Site) URL(p string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(p, "/")
}

// Schemas returns the JSON-LD documents declared by projects.
func (s *Site) Schemas() []map[string]any {
	var out []map[string]any
	for _, p := range s.Projects {
		if len(p.Schema) > 0 {
			out = append(out, p.Schema)
		}
	}
	return out
}

const (
	siteFile    = "site.yaml"
	aboutFile   = "about.md"
	projectGlob = "projects/*.md"
)

// Load reads site.yaml, about.md and projects/*.md from fsys.
func Load(fsys fs.FS) (*Site, error) {
	data, err := readFile(fsys, siteFile)
	if err != nil {
		return nil, err
	}

	site := &Site{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(site); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSite, siteFile, err)
	}
	if err := site.validate(); err != nil {
		return nil, err
	}

	r := NewRenderer()

	about, err := loadPage(fsys, r, aboutFile)
	if err != nil {
		return nil, err
	}
	site.About = *about

	paths, err := fs.Glob(fsys, projectGlob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSite, err)
	}
	for _, p := range paths {
		project, err := loadProject(fsys, r, p)
		if err != nil {
			return nil, err
		}
		site.Projects = append(site.Projects, *project)
	}
	slices.SortStableFunc(site.Projects, func(a, b Project) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), strings.Compare(a.Slug, b.Slug))
	})

	return site, nil
}

func (s *Site) validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !strings.HasPrefix(s.BaseURL, "http") {
		errs = append(errs, errors.New("base_url must be an absolute URL"))
	}
	if s.Meta.Title == "" {
		errs = append(errs, errors.New("meta.title is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSite, errors.Join(errs...))
	}
	return nil
}

func loadPage(fsys fs.FS, r *Renderer, name string) (*Page, error) {
	data, err := readFile(fsys, name)
	if err != nil {
		return nil, err
	}

	page := &Page{}
	body, err := ParseFrontmatter(data, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if page.Body, err = r.Render(body); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return page, nil
}

func loadProject(fsys fs.FS, r *Renderer, name string) (*Project, error) {
	data, err := readFile(fsys, name)
	if err != nil {
		return nil, err
	}

	project := &Project{Slug: slugFromPath(name)}
	body, err := ParseFrontmatter(data, project)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if project.Title == "" {
		return nil, fmt.Errorf("%w: %s: title is required", ErrInvalidSite, name)
	}
	if project.Body, err = r.Render(body); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	project.Summary = Excerpt(project.Body)
	return project, nil
}

// slugFromPath turns "projects/01-never-forget.md" into "never-forget".
func slugFromPath(p string) string {
	base := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if prefix, rest, ok := strings.Cut(base, "-"); ok && isDigits(prefix) {
		return rest
	}
	return base
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func readFile(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return data, nil
}
