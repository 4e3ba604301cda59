package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/handlers"
	"github.com/charlieallen/portfolio/middlewares"
	"github.com/charlieallen/portfolio/pkg/cache"
	"github.com/charlieallen/portfolio/pkg/ratelimit"
	"github.com/charlieallen/portfolio/views"
)

func formRequest(values url.Values, htmxRequest bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmxRequest {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Jo"},
		"email":   {"jo@example.com"},
		"message": {"Hello there, this is a test message."},
	}
}

func TestContactForm_Show(t *testing.T) {
	t.Parallel()

	app := newApp(t, appConfig{submitter: newService(&outbox{})})
	rec := serve(app, httptest.NewRequest(http.MethodGet, "/contact", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<form id="contact-form"`)
	assert.Contains(t, body, `data-banner hidden`)
}

func TestContactForm_Invalid(t *testing.T) {
	t.Parallel()

	values := url.Values{
		"name":    {"Jo"},
		"email":   {"jo@"},
		"message": {"short"},
	}

	t.Run("plain request gets the page", func(t *testing.T) {
		t.Parallel()
		box := &outbox{}
		app := newApp(t, appConfig{submitter: newService(box)})
		rec := serve(app, formRequest(values, false))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<html")
		assert.Contains(t, body, "Please enter a valid email address")
		assert.Contains(t, body, "Message must be at least 10 characters long")
		assert.Contains(t, body, `value="jo@"`)
		assert.Empty(t, box.emails())
	})

	t.Run("htmx request gets the form", func(t *testing.T) {
		t.Parallel()
		box := &outbox{}
		app := newApp(t, appConfig{submitter: newService(box)})
		rec := serve(app, formRequest(values, true))

		// htmx only swaps 2xx responses
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, `<form id="contact-form"`)
		assert.Contains(t, body, "Please enter a valid email address")
		assert.Empty(t, box.emails())
	})
}

func TestContactForm_SentHTMX(t *testing.T) {
	t.Parallel()

	box := &outbox{}
	app := newApp(t, appConfig{submitter: newService(box)})
	rec := serve(app, formRequest(validForm(), true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, handlers.EventContactSent, rec.Header().Get("HX-Trigger"))
	body := rec.Body.String()
	assert.Contains(t, body, "Message sent successfully!")
	assert.NotContains(t, body, `value="Jo"`)

	emails := box.emails()
	require.Len(t, emails, 1)
	assert.Equal(t, "jo@example.com", emails[0].ReplyTo)
}

func TestContactForm_PostRedirectGet(t *testing.T) {
	t.Parallel()

	box := &outbox{}
	app := newApp(t, appConfig{submitter: newService(box), secret: testSecret})

	rec := serve(app, formRequest(validForm(), false))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))
	require.Len(t, box.emails(), 1)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	get := httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, c := range cookies {
		get.AddCookie(c)
	}
	rec = serve(app, get)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message sent successfully!")
	assert.NotContains(t, rec.Body.String(), `data-banner hidden`)

	// the flash is consumed
	var deleted bool
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			deleted = true
		}
	}
	assert.True(t, deleted)

	rec = serve(app, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Contains(t, rec.Body.String(), `data-banner hidden`)
}

func TestContactForm_SentWithoutSecret(t *testing.T) {
	t.Parallel()

	box := &outbox{}
	app := newApp(t, appConfig{submitter: newService(box)})
	rec := serve(app, formRequest(validForm(), false))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message sent successfully!")
	assert.Len(t, box.emails(), 1)
}

func TestContactForm_DeliveryFailure(t *testing.T) {
	t.Parallel()

	box := &outbox{err: errors.New("provider down")}
	app := newApp(t, appConfig{submitter: newService(box)})
	rec := serve(app, formRequest(validForm(), false))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, views.FailedDelivery)
	assert.Contains(t, body, `value="Jo"`)
	assert.NotContains(t, body, "provider down")
}

func TestContactForm_RateLimited(t *testing.T) {
	t.Parallel()

	counter := cache.NewMemoryCounter()
	t.Cleanup(func() { _ = counter.Close() })
	limiter, err := ratelimit.New(counter, 1, time.Minute)
	require.NoError(t, err)

	box := &outbox{}
	app := newApp(t, appConfig{
		submitter: newService(box),
		formMW:    []portfolio.Middleware{middlewares.RateLimit(limiter)},
	})

	rec := serve(app, formRequest(validForm(), true))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, formRequest(validForm(), false))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Slow down")
	assert.Contains(t, rec.Body.String(), "Too many requests")
	assert.Len(t, box.emails(), 1)

	// the page itself is never limited
	rec = serve(app, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
