// Package portfolio is the HTTP application core of the Charlie Allen
// portfolio site: a small set of server-rendered pages and the contact form
// relay that forwards visitor messages to the site owner by email.
//
// The package wraps a chi router with a handler signature that returns
// errors, a Context carrying rendering, cookie and logging helpers, and a
// runtime with graceful shutdown.
//
// # Quick Start
//
//	app := portfolio.New(
//	    portfolio.WithCustomLogger(log),
//	    portfolio.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	    ),
//	    portfolio.WithHandlers(
//	        handlers.NewPages(site, v),
//	        handlers.NewAPI(svc, handlers.APIConfig{AllowedOrigin: origin}),
//	    ),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] and declare their routes:
//
//	func (h *Pages) Routes(r portfolio.Router) {
//	    r.GET("/", h.home)
//	    r.GET("/about", h.about)
//	}
//
// # Serverless
//
// [App] implements http.Handler. The lambdaproxy package replays API Gateway
// events through it, so the same routes serve both the long-running server
// and the Lambda function.
package portfolio
