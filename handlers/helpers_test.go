package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/handlers"
	"github.com/charlieallen/portfolio/middlewares"
	"github.com/charlieallen/portfolio/pkg/contact"
	"github.com/charlieallen/portfolio/pkg/content"
	"github.com/charlieallen/portfolio/pkg/mailer"
	"github.com/charlieallen/portfolio/site"
	"github.com/charlieallen/portfolio/views"
)

const (
	testOrigin = "https://charlieallen.dev"
	testSecret = "0123456789abcdef0123456789abcdef"
)

// outbox records every email handed to the sender.
type outbox struct {
	mu   sync.Mutex
	sent []*mailer.Email
	err  error
}

func (o *outbox) Send(_ context.Context, e *mailer.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, e)
	return nil
}

func (o *outbox) emails() []*mailer.Email {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*mailer.Email(nil), o.sent...)
}

func newService(box *outbox) *contact.Service {
	m := mailer.New(box, mailer.Config{SenderEmail: "noreply@charlieallen.dev"})
	return contact.NewService(m, contact.Config{})
}

func newViews(t *testing.T) *views.Views {
	t.Helper()
	s, err := content.Load(site.FS)
	require.NoError(t, err)
	v, err := views.New(s, views.WithClock(func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	}))
	require.NoError(t, err)
	return v
}

// apiCORS is the header set the contact relay sends on every response.
func apiCORS() portfolio.Middleware {
	return middlewares.CORS(
		middlewares.WithStaticOrigin(testOrigin),
		middlewares.WithAllowMethods(http.MethodPost, http.MethodOptions),
		middlewares.WithAllowHeaders("Content-Type"),
		middlewares.WithMaxAge(0),
		middlewares.WithPreflightStatus(http.StatusOK),
	)
}

type appConfig struct {
	submitter handlers.Submitter
	apiMW     []portfolio.Middleware
	formMW    []portfolio.Middleware
	secret    string
}

func newApp(t *testing.T, cfg appConfig) *portfolio.App {
	t.Helper()
	v := newViews(t)

	cookieOpts := []portfolio.CookieOption{}
	if cfg.secret != "" {
		cookieOpts = append(cookieOpts, portfolio.WithCookieSecret(cfg.secret))
	}

	return portfolio.New(
		portfolio.WithMiddleware(middlewares.RequestID(), middlewares.Recover(middlewares.WithRecoverDisablePrintStack())),
		portfolio.WithCookieOptions(cookieOpts...),
		portfolio.WithErrorHandler(handlers.NewErrorHandler(v)),
		portfolio.WithNotFoundHandler(handlers.NotFound(v)),
		portfolio.WithHandlers(
			handlers.NewPages(v),
			handlers.NewSEO(v, time.Time{}),
			handlers.NewContactForm(v, cfg.submitter, handlers.WithSubmitMiddleware(cfg.formMW...)),
			handlers.NewAPI(cfg.submitter, handlers.WithAPIMiddleware(append([]portfolio.Middleware{apiCORS()}, cfg.apiMW...)...)),
		),
	)
}

func serve(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, body string) *http.Request {
	req := httptest.NewRequest(method, handlers.DefaultAPIPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", testOrigin)
	return req
}
