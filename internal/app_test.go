package internal_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio/internal"
	"github.com/charlieallen/portfolio/pkg/cookie"
	"github.com/charlieallen/portfolio/pkg/htmx"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

type textComponent string

func (t textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

func jsonErrors(c internal.Context, err error) error {
	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		return c.JSON(httpErr.StatusCode(), map[string]string{"error": httpErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal"})
}

func serve(app *internal.App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestApp_Any(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithHandlers(routes(func(r internal.Router) {
			r.Any("/api/echo", func(c internal.Context) error {
				return c.String(http.StatusOK, c.Request().Method)
			})
		})),
	)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodDelete} {
		rec := serve(app, httptest.NewRequest(method, "/api/echo", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, method, rec.Body.String())
	}
}

func TestApp_ErrorHandler(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithErrorHandler(jsonErrors),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/teapot", func(c internal.Context) error {
				return c.Error(http.StatusTeapot, "short and stout")
			})
			r.GET("/boom", func(c internal.Context) error {
				return errors.New("boom")
			})
			r.GET("/late", func(c internal.Context) error {
				_ = c.String(http.StatusOK, "partial")
				return errors.New("after write")
			})
		})),
	)

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.JSONEq(t, `{"error":"short and stout"}`, rec.Body.String())

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/late", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "partial", rec.Body.String())
}

func TestApp_DefaultErrorHandler(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error { return errors.New("boom") })
	})))

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestApp_NotFound(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "nothing at "+c.Request().URL.Path)
		}),
	)

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "nothing at /missing", rec.Body.String())
}

func TestApp_Middleware(t *testing.T) {
	t.Parallel()

	type key struct{}
	var order []string

	global := func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			order = append(order, "global")
			c.Set(key{}, "from-global")
			return next(c)
		}
	}
	route := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app := internal.New(
		internal.WithMiddleware(global),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				order = append(order, "handler")
				v, _ := c.Get(key{}).(string)
				return c.String(http.StatusOK, v)
			}, route("first"), route("second"))
		})),
	)

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "from-global", rec.Body.String())
	require.Equal(t, []string{"global", "first", "second", "handler"}, order)
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("mailer", func(context.Context) error { return errors.New("no sender") }),
	))

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApp_StaticFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"css/site.css": {Data: []byte("body{}")},
	}
	app := internal.New(internal.WithStaticFiles("/static/", fsys, ""))

	rec := serve(app, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	require.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/static/css/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContext_BindJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	app := internal.New(
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			if errors.Is(err, internal.ErrInvalidBody) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
			}
			return jsonErrors(c, err)
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/", func(c internal.Context) error {
				var p payload
				if err := c.BindJSON(&p); err != nil {
					return err
				}
				return c.JSON(http.StatusOK, p)
			})
		})),
	)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"valid", `{"name":"Jo"}`, http.StatusOK},
		{"trailing whitespace", "{\"name\":\"Jo\"}\n", http.StatusOK},
		{"malformed", `{"name":`, http.StatusBadRequest},
		{"empty", ``, http.StatusBadRequest},
		{"trailing data", `{"name":"Jo"}{}`, http.StatusBadRequest},
		{"too large", `{"name":"` + strings.Repeat("a", int(internal.DefaultJSONBodyLimit)) + `"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(app, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestContext_RenderPartial(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.POST("/contact", func(c internal.Context) error {
			return c.RenderPartial(http.StatusUnprocessableEntity,
				textComponent("<html>full</html>"),
				textComponent("<form>partial</form>"),
				htmx.WithTrigger("contact:invalid"),
				htmx.WithOOB(textComponent(`<div id="toast" hx-swap-oob="true"></div>`)),
			)
		})
	})))

	t.Run("plain request", func(t *testing.T) {
		t.Parallel()

		rec := serve(app, httptest.NewRequest(http.MethodPost, "/contact", nil))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, "<html>full</html>", rec.Body.String())
		require.Empty(t, rec.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("htmx request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.Header.Set(htmx.HeaderHXRequest, "true")
		rec := serve(app, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, `<form>partial</form><div id="toast" hx-swap-oob="true"></div>`, rec.Body.String())
		require.Equal(t, "contact:invalid", rec.Header().Get(htmx.HeaderHXTrigger))
		require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	})
}

func TestContext_Flash(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithCookieOptions(cookie.WithSecret(strings.Repeat("s", 32))),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.POST("/contact", func(c internal.Context) error {
				if err := c.SetFlash("contact", "sent"); err != nil {
					return err
				}
				return c.Redirect(http.StatusSeeOther, "/contact")
			})
			r.GET("/contact", func(c internal.Context) error {
				var status string
				if err := c.Flash("contact", &status); err != nil {
					status = "none"
				}
				return c.String(http.StatusOK, status)
			})
		})),
	)

	rec := serve(app, httptest.NewRequest(http.MethodPost, "/contact", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/contact", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	rec = serve(app, req)
	require.Equal(t, "sent", rec.Body.String())

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/contact", nil))
	require.Equal(t, "none", rec.Body.String())
}
