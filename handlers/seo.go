package handlers

import (
	"net/http"
	"time"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/views"
)

// SEO serves robots.txt and sitemap.xml.
type SEO struct {
	views   *views.Views
	lastMod time.Time
}

// NewSEO creates the handler. lastMod is reported for every sitemap entry;
// pass the build time, or the zero time to omit it.
func NewSEO(v *views.Views, lastMod time.Time) *SEO {
	return &SEO{views: v, lastMod: lastMod}
}

func (h *SEO) Routes(r portfolio.Router) {
	r.GET("/robots.txt", h.robots)
	r.GET("/sitemap.xml", h.sitemap)
}

func (h *SEO) robots(c portfolio.Context) error {
	c.SetHeader("Cache-Control", "public, max-age=86400")
	return c.String(http.StatusOK, string(h.views.RobotsTXT()))
}

func (h *SEO) sitemap(c portfolio.Context) error {
	data, err := h.views.SitemapXML(h.lastMod)
	if err != nil {
		return err
	}
	c.SetHeader("Content-Type", "application/xml; charset=utf-8")
	c.SetHeader("Cache-Control", "public, max-age=86400")
	c.ResponseWriter().WriteHeader(http.StatusOK)
	_, err = c.ResponseWriter().Write(data)
	return err
}
