package handlers

import (
	"net/http"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/pkg/contact"
)

// DefaultAPIPath is where the JSON contact endpoint is mounted.
const DefaultAPIPath = "/api/contact"

// Response bodies of the contact API.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidBody      = "Invalid request body"
	msgSendFailed       = "Failed to send message"
	msgSent             = "Message sent successfully"
	msgInternal         = "Internal server error"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SuccessResponse is the JSON body of an accepted submission.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// API is the JSON contact relay endpoint used by the static site.
type API struct {
	submitter Submitter
	path      string
	mw        []portfolio.Middleware
}

// APIOption configures API.
type APIOption func(*API)

// WithAPIPath mounts the endpoint at path. Use "/*" to answer on every path.
func WithAPIPath(path string) APIOption {
	return func(h *API) {
		h.path = path
	}
}

// WithAPIMiddleware adds route middleware, such as CORS and rate limiting.
// The first middleware given runs first.
func WithAPIMiddleware(mw ...portfolio.Middleware) APIOption {
	return func(h *API) {
		h.mw = append(h.mw, mw...)
	}
}

// NewAPI serves the JSON contact relay backed by s.
func NewAPI(s Submitter, opts ...APIOption) *API {
	h := &API{submitter: s, path: DefaultAPIPath}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes answers every method so that CORS preflights and 405s share the
// contract's headers and bodies.
func (h *API) Routes(r portfolio.Router) {
	r.Any(h.path, h.contact, h.mw...)
}

func (h *API) contact(c portfolio.Context) error {
	switch c.Request().Method {
	case http.MethodOptions:
		// CORS middleware normally answers first
		return c.NoContent(http.StatusOK)
	case http.MethodPost:
	default:
		c.SetHeader("Allow", "POST, OPTIONS")
		return c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: msgMethodNotAllowed})
	}

	var sub contact.Submission
	if err := c.BindJSON(&sub); err != nil {
		return portfolio.ErrBadRequest(msgInvalidBody, portfolio.WithErrorCause(err))
	}

	receipt, err := h.submitter.Submit(c, sub)
	if err != nil {
		if ve, ok := contact.AsValidationError(err); ok {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Summary, Fields: ve.Map()})
		}
		if de, ok := contact.AsDeliveryError(err); ok {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgSendFailed, Details: de.Detail()})
		}
		return err
	}

	c.LogInfo("contact submission accepted", "submission_id", receipt.ID)
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: msgSent})
}
