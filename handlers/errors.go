package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/middlewares"
	"github.com/charlieallen/portfolio/pkg/contact"
	"github.com/charlieallen/portfolio/pkg/htmx"
	"github.com/charlieallen/portfolio/pkg/logger"
	"github.com/charlieallen/portfolio/views"
)

// errorInfo is the classified form of a handler error.
type errorInfo struct {
	status  int
	message string
	details string
	fields  map[string]string
}

// classifyError maps err onto a status code and the message shown to clients.
// Internal error text is never exposed except for upstream delivery
// failures, whose detail the contact API reports by contract.
func classifyError(err error) errorInfo {
	info := errorInfo{status: http.StatusInternalServerError, message: msgInternal}

	if he := portfolio.AsHTTPError(err); he != nil {
		info.status = he.StatusCode()
		info.message = he.Message
		info.details = he.Detail
		return info
	}
	if ve, ok := contact.AsValidationError(err); ok {
		info.status = http.StatusBadRequest
		info.message = ve.Summary
		info.fields = ve.Map()
		return info
	}
	if de, ok := contact.AsDeliveryError(err); ok {
		info.message = msgSendFailed
		info.details = de.Detail()
		return info
	}
	if te, ok := middlewares.AsTimeoutError(err); ok {
		info.status = te.StatusCode()
		info.message = "Request timed out"
		return info
	}
	if errors.Is(err, portfolio.ErrInvalidBody) {
		info.status = http.StatusBadRequest
		info.message = msgInvalidBody
	}
	return info
}

func logLevel(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelWarn
}

type errorHandlerConfig struct {
	jsonPrefixes []string
	logger       *slog.Logger
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

// WithJSONPrefix renders errors on paths under prefix as JSON.
// "/" makes every response JSON. Defaults to "/api/".
func WithJSONPrefix(prefixes ...string) ErrorHandlerOption {
	return func(cfg *errorHandlerConfig) {
		cfg.jsonPrefixes = prefixes
	}
}

// WithErrorLogger sets the logger errors are reported to.
func WithErrorLogger(l *slog.Logger) ErrorHandlerOption {
	return func(cfg *errorHandlerConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// NewErrorHandler returns the app error handler. API paths get
// {"error": ...} bodies; other paths get the HTML error page, or plain
// text when v is nil.
func NewErrorHandler(v *views.Views, opts ...ErrorHandlerOption) portfolio.ErrorHandler {
	cfg := &errorHandlerConfig{
		jsonPrefixes: []string{"/api/"},
		logger:       logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	wantsJSON := func(r *http.Request) bool {
		for _, p := range cfg.jsonPrefixes {
			if strings.HasPrefix(r.URL.Path, p) {
				return true
			}
		}
		return strings.Contains(r.Header.Get("Accept"), "application/json")
	}

	return func(c portfolio.Context, err error) error {
		info := classifyError(err)
		requestID := middlewares.GetRequestID(c)

		cfg.logger.LogAttrs(c, logLevel(info.status), "request failed",
			slog.Int("status", info.status),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		if wantsJSON(c.Request()) {
			return c.JSON(info.status, ErrorResponse{
				Error:   info.message,
				Details: info.details,
				Fields:  info.fields,
			})
		}

		if v == nil {
			http.Error(c.Response(), info.message, info.status)
			return nil
		}

		page := v.Error(info.status, pageMessage(info), requestID)
		if c.IsHTMX() {
			return c.Render(info.status, page,
				htmx.WithRetarget("body"),
				htmx.WithReswap(htmx.SwapInnerHTML),
			)
		}
		return c.Render(info.status, page)
	}
}

// pageMessage hides the generic 500 text behind the page's own wording.
func pageMessage(info errorInfo) string {
	if info.message == msgInternal {
		return ""
	}
	return info.message
}
