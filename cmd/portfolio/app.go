package main

import (
	"net/http"
	"time"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/handlers"
	"github.com/charlieallen/portfolio/middlewares"
	"github.com/charlieallen/portfolio/pkg/contact"
	"github.com/charlieallen/portfolio/pkg/content"
	"github.com/charlieallen/portfolio/site"
	"github.com/charlieallen/portfolio/views"
)

const staticCacheControl = "public, max-age=31536000, immutable"

func apiCORS(origin string) portfolio.Middleware {
	return middlewares.CORS(
		middlewares.WithStaticOrigin(origin),
		middlewares.WithAllowMethods(http.MethodPost, http.MethodOptions),
		middlewares.WithAllowHeaders("Content-Type"),
		middlewares.WithMaxAge(0),
		middlewares.WithPreflightStatus(http.StatusOK),
	)
}

func loadViews(opts ...views.Option) (*views.Views, error) {
	s, err := content.Load(site.FS)
	if err != nil {
		return nil, err
	}
	return views.New(s, opts...)
}

// newServerApp serves the whole site: pages, the contact form, the JSON
// relay and static assets.
func newServerApp(cfg Config, d *deps, v *views.Views, startedAt time.Time) *portfolio.App {
	var cookieOpts []portfolio.CookieOption
	if cfg.Server.CookieSecret != "" {
		cookieOpts = append(cookieOpts, portfolio.WithCookieSecret(cfg.Server.CookieSecret))
	}
	cookieOpts = append(cookieOpts,
		portfolio.WithCookieSecure(cfg.Server.CookieSecure),
		portfolio.WithCookieSameSite(http.SameSiteLaxMode),
	)

	readiness := make([]portfolio.HealthOption, 0, len(d.checks))
	for name, check := range d.checks {
		readiness = append(readiness, portfolio.WithReadinessCheck(name, check))
	}

	apiMW := append([]portfolio.Middleware{apiCORS(cfg.Server.AllowedOrigin)}, d.rateLimit()...)

	return portfolio.New(
		portfolio.WithCustomLogger(d.logger),
		portfolio.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.Timeout(cfg.Server.RequestTimeout),
		),
		portfolio.WithCookieOptions(cookieOpts...),
		portfolio.WithErrorHandler(handlers.NewErrorHandler(v, handlers.WithErrorLogger(d.logger))),
		portfolio.WithNotFoundHandler(handlers.NotFound(v)),
		portfolio.WithStaticFiles(views.StaticPrefix, views.Static(), staticCacheControl),
		portfolio.WithHealthChecks(readiness...),
		portfolio.WithHandlers(
			handlers.NewPages(v),
			handlers.NewSEO(v, startedAt),
			handlers.NewContactForm(v, d.service,
				handlers.WithFormRules(contact.FormRules()),
				handlers.WithSubmitMiddleware(d.rateLimit()...),
			),
			handlers.NewAPI(d.service, handlers.WithAPIMiddleware(apiMW...)),
		),
	)
}

// newRelayApp is the Lambda surface: every path is the contact endpoint and
// every error is JSON.
func newRelayApp(cfg Config, d *deps) *portfolio.App {
	apiMW := append([]portfolio.Middleware{apiCORS(cfg.Server.AllowedOrigin)}, d.rateLimit()...)

	return portfolio.New(
		portfolio.WithCustomLogger(d.logger),
		portfolio.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(middlewares.WithRecoverDisablePrintStack()),
			middlewares.Timeout(cfg.Server.RequestTimeout),
		),
		portfolio.WithErrorHandler(handlers.NewErrorHandler(nil,
			handlers.WithJSONPrefix("/"),
			handlers.WithErrorLogger(d.logger),
		)),
		portfolio.WithHandlers(handlers.NewAPI(d.service,
			handlers.WithAPIPath("/*"),
			handlers.WithAPIMiddleware(apiMW...),
		)),
	)
}
