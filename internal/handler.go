package internal

// Handler declares routes on a router.
//
//	type Pages struct{ site *content.Site }
//
//	func (h *Pages) Routes(r portfolio.Router) {
//	    r.GET("/", h.home)
//	    r.GET("/about", h.about)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// A non-nil error is passed to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc. It may inspect the request, short-circuit,
// or decorate the response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
