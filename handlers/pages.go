package handlers

import (
	"net/http"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/views"
)

// Pages serves the static content pages.
type Pages struct {
	views *views.Views
}

func NewPages(v *views.Views) *Pages {
	return &Pages{views: v}
}

func (h *Pages) Routes(r portfolio.Router) {
	r.GET("/", h.home)
	r.GET("/about", h.about)
	r.GET("/projects", h.projects)
}

func (h *Pages) home(c portfolio.Context) error {
	return c.Render(http.StatusOK, h.views.Home())
}

func (h *Pages) about(c portfolio.Context) error {
	return c.Render(http.StatusOK, h.views.About())
}

func (h *Pages) projects(c portfolio.Context) error {
	return c.Render(http.StatusOK, h.views.Projects())
}

// NotFound renders the 404 page. Register it with portfolio.WithNotFoundHandler.
func NotFound(v *views.Views) portfolio.HandlerFunc {
	return func(c portfolio.Context) error {
		return c.Render(http.StatusNotFound, v.NotFound())
	}
}
