// Package internal holds the HTTP application core behind the portfolio
// package. Import "github.com/charlieallen/portfolio" instead; it re-exports
// the public API.
//
// # Core Types
//
//   - App: owns the chi router, middleware chain, error handling and graceful shutdown
//   - Context: request/response access plus rendering, cookie and logging helpers
//   - Router: the interface handlers use to declare routes
//   - Handler: implemented by types that declare routes
//   - HandlerFunc: a route handler returning an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: turns handler errors into responses
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed to anything that takes
// a standard context:
//
//	func (h *API) submit(c internal.Context) error {
//	    receipt, err := h.contact.Submit(c, sub)
//	    ...
//	}
//
// # Handlers
//
//	type Pages struct{ site *content.Site }
//
//	func (h *Pages) Routes(r internal.Router) {
//	    r.GET("/", h.home)
//	    r.GET("/about", h.about)
//	}
//
// Routes registered with Any receive every method; the handler decides which
// to accept. The contact API uses this to answer 405 with its own JSON body.
//
// # Rendering
//
// Render writes any Component (templ components included). For HTMX requests
// render options set response headers and append out-of-band components, and
// the ResponseWriter sends non-200 codes as 200 so htmx still swaps the body.
// RenderPartial picks between a full page and a fragment by request type.
//
// # Error Handling
//
// A handler error goes to the ErrorHandler unless the response has already
// been written. Return an *HTTPError to choose the status code and message:
//
//	return c.Error(http.StatusNotFound, "page not found")
//
// # Server Runtime
//
//	err := app.Run(":8080",
//	    internal.Logger(log),
//	    internal.ShutdownHook(redis.Shutdown(client)),
//	)
//
// App also implements http.Handler, so it can be driven by httptest or the
// Lambda adapter without a listener.
package internal
