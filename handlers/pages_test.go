package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/handlers"
	"github.com/charlieallen/portfolio/middlewares"
)

func TestPages(t *testing.T) {
	t.Parallel()

	app := newApp(t, appConfig{submitter: newService(&outbox{})})

	tests := []struct {
		path string
		want string
	}{
		{"/", "View My Work"},
		{"/about", "Technical Skills"},
		{"/projects", "application/ld+json"},
		{"/contact", "Contact Information"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := serve(app, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	app := newApp(t, appConfig{submitter: newService(&outbox{})})
	rec := serve(app, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestSEO(t *testing.T) {
	t.Parallel()

	app := newApp(t, appConfig{submitter: newService(&outbox{})})

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://charlieallen.dev/sitemap.xml")

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<loc>https://charlieallen.dev/projects</loc>")
	assert.NotContains(t, rec.Body.String(), "<lastmod>")
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	v := newViews(t)

	tests := []struct {
		name       string
		path       string
		accept     string
		htmx       bool
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "api http error",
			path:       "/api/x",
			err:        portfolio.ErrTooManyRequests("Too many requests"),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   `{"error":"Too many requests"}`,
		},
		{
			name:       "api invalid body",
			path:       "/api/x",
			err:        errors.Join(portfolio.ErrInvalidBody, errors.New("eof")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request body"}`,
		},
		{
			name:       "api panic",
			path:       "/api/x",
			err:        &middlewares.PanicError{Value: "boom"},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name:       "api timeout",
			path:       "/api/x",
			err:        &middlewares.TimeoutError{},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"Request timed out"}`,
		},
		{
			name:       "accept header selects json",
			path:       "/x",
			accept:     "application/json",
			err:        errors.New("secret internals"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
		{
			name:       "html page",
			path:       "/x",
			err:        errors.New("secret internals"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Something went wrong",
		},
		{
			name:       "htmx page retargets body",
			path:       "/x",
			htmx:       true,
			err:        portfolio.ErrTooManyRequests("Too many requests"),
			wantStatus: http.StatusOK,
			wantBody:   "Slow down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := portfolio.New(
				portfolio.WithErrorHandler(handlers.NewErrorHandler(v)),
				portfolio.WithHandlers(routeFunc(func(r portfolio.Router) {
					r.Any("/*", func(portfolio.Context) error { return tt.err })
				})),
			)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rec := serve(app, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody[0] == '{' {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.NotContains(t, rec.Body.String(), "secret internals")
			if tt.htmx {
				assert.Equal(t, "body", rec.Header().Get("HX-Retarget"))
			}
		})
	}
}

type routeFunc func(r portfolio.Router)

func (f routeFunc) Routes(r portfolio.Router) { f(r) }
