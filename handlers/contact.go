package handlers

import (
	"errors"
	"net/http"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/pkg/contact"
	"github.com/charlieallen/portfolio/pkg/cookie"
	"github.com/charlieallen/portfolio/pkg/htmx"
	"github.com/charlieallen/portfolio/views"
)

const (
	flashContact = "contact"

	// EventContactSent is triggered on HTMX clients after a successful send.
	EventContactSent = "contact:sent"
)

// ContactForm serves the contact page and accepts its form posts.
type ContactForm struct {
	views     *views.Views
	submitter Submitter
	rules     contact.Rules
	postMW    []portfolio.Middleware
}

// ContactFormOption configures ContactForm.
type ContactFormOption func(*ContactForm)

// WithFormRules overrides the validation applied before relaying.
func WithFormRules(r contact.Rules) ContactFormOption {
	return func(h *ContactForm) {
		h.rules = r
	}
}

// WithSubmitMiddleware adds middleware to the POST route only.
func WithSubmitMiddleware(mw ...portfolio.Middleware) ContactFormOption {
	return func(h *ContactForm) {
		h.postMW = append(h.postMW, mw...)
	}
}

// NewContactForm serves the contact page and accepts its form posts.
func NewContactForm(v *views.Views, s Submitter, opts ...ContactFormOption) *ContactForm {
	h := &ContactForm{views: v, submitter: s, rules: contact.FormRules()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *ContactForm) Routes(r portfolio.Router) {
	r.GET("/contact", h.show)
	r.POST("/contact", h.submit, h.postMW...)
}

// show renders the form, with the success banner after a redirect.
func (h *ContactForm) show(c portfolio.Context) error {
	var form views.ContactForm
	if err := c.Flash(flashContact, &form); err != nil &&
		!errors.Is(err, cookie.ErrNotFound) && !errors.Is(err, cookie.ErrNoSecret) {
		c.LogWarn("contact flash unreadable", "error", err)
	}
	// only the outcome survives the redirect
	form = views.ContactForm{Sent: form.Sent}
	return c.Render(http.StatusOK, h.views.Contact(form))
}

func (h *ContactForm) submit(c portfolio.Context) error {
	sub := contact.Submission{
		Name:    c.Form(contact.FieldName),
		Email:   c.Form(contact.FieldEmail),
		Message: c.Form(contact.FieldMessage),
	}

	if err := contact.ValidateForm(sub, h.rules); err != nil {
		return h.render(c, http.StatusUnprocessableEntity, views.FormFromError(sub, err))
	}

	receipt, err := h.submitter.Submit(c, sub)
	switch {
	case errors.Is(err, contact.ErrValidation):
		return h.render(c, http.StatusUnprocessableEntity, views.FormFromError(sub, err))
	case errors.Is(err, contact.ErrDeliveryFailed):
		return h.render(c, http.StatusInternalServerError, views.FormFromError(sub, err))
	case err != nil:
		return err
	}
	c.LogInfo("contact form sent", "submission_id", receipt.ID)

	if c.IsHTMX() {
		return c.Render(http.StatusOK, h.views.ContactFormPartial(views.SentForm()),
			htmx.WithTrigger(EventContactSent))
	}

	// Post/Redirect/Get; without a cookie secret there is no flash, so the
	// banner is rendered in place instead.
	if err := c.SetFlash(flashContact, views.SentForm()); err != nil {
		if !errors.Is(err, cookie.ErrNoSecret) {
			c.LogWarn("contact flash not set", "error", err)
		}
		return c.Render(http.StatusOK, h.views.Contact(views.SentForm()))
	}
	return c.Redirect(http.StatusSeeOther, "/contact")
}

func (h *ContactForm) render(c portfolio.Context, code int, form views.ContactForm) error {
	return c.RenderPartial(code, h.views.Contact(form), h.views.ContactFormPartial(form))
}
