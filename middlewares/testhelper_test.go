package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/charlieallen/portfolio/internal"
)

type routeFunc func(r internal.Router)

func (f routeFunc) Routes(r internal.Router) { f(r) }

// run serves req through a single catch-all route guarded by mw and returns
// the recorded response and the error that reached the error handler.
func run(req *http.Request, h internal.HandlerFunc, mw ...internal.Middleware) (*httptest.ResponseRecorder, error) {
	var handlerErr error
	app := internal.New(
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			handlerErr = err
			if httpErr := internal.AsHTTPError(err); httpErr != nil {
				return c.String(httpErr.StatusCode(), httpErr.Message)
			}
			return c.String(http.StatusInternalServerError, err.Error())
		}),
		internal.WithHandlers(routeFunc(func(r internal.Router) {
			r.Any("/*", h, mw...)
		})),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec, handlerErr
}

func ok(c internal.Context) error {
	return c.String(http.StatusOK, "ok")
}
