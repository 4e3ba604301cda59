package htmx_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charlieallen/portfolio/pkg/htmx"
)

type mockComponent struct {
	content string
	err     error
}

func (m mockComponent) Render(_ context.Context, w io.Writer) error {
	if m.err != nil {
		return m.err
	}
	_, err := w.Write([]byte(m.content))
	return err
}

func TestRequestDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		headers     map[string]string
		wantHTMX    bool
		wantPartial bool
	}{
		{name: "plain request", headers: nil, wantHTMX: false, wantPartial: false},
		{name: "htmx request", headers: map[string]string{"HX-Request": "true"}, wantHTMX: true, wantPartial: true},
		{name: "boosted request", headers: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, wantHTMX: true, wantPartial: false},
		{name: "non-true value", headers: map[string]string{"HX-Request": "1"}, wantHTMX: false, wantPartial: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := htmx.IsHTMX(r); got != tt.wantHTMX {
				t.Errorf("IsHTMX() = %v, want %v", got, tt.wantHTMX)
			}
			if got := htmx.IsPartial(r); got != tt.wantPartial {
				t.Errorf("IsPartial() = %v, want %v", got, tt.wantPartial)
			}
		})
	}
}

func TestTarget(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	r.Header.Set("HX-Target", "contact-form")
	if got := htmx.Target(r); got != "contact-form" {
		t.Errorf("Target() = %q, want %q", got, "contact-form")
	}
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("htmx request", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()

		htmx.Redirect(w, r, "/contact")

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Header().Get("HX-Redirect"); got != "/contact" {
			t.Errorf("HX-Redirect = %q, want %q", got, "/contact")
		}
	})

	t.Run("plain request uses see other", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		w := httptest.NewRecorder()

		htmx.Redirect(w, r, "/contact")

		if w.Code != http.StatusSeeOther {
			t.Errorf("status = %d, want %d", w.Code, http.StatusSeeOther)
		}
		if got := w.Header().Get("Location"); got != "/contact" {
			t.Errorf("Location = %q, want %q", got, "/contact")
		}
	})
}

func TestApplyHeaders(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		var cfg *htmx.Config
		w := httptest.NewRecorder()
		cfg.ApplyHeaders(w)
		if len(w.Header()) != 0 {
			t.Errorf("expected no headers, got %v", w.Header())
		}
	})

	t.Run("swap headers", func(t *testing.T) {
		t.Parallel()

		cfg := htmx.NewConfig(
			htmx.WithRetarget("#contact-form"),
			htmx.WithReswap(htmx.SwapOuterHTML),
			htmx.WithPushURL("false"),
			htmx.WithRefresh(),
		)
		w := httptest.NewRecorder()
		cfg.ApplyHeaders(w)

		want := map[string]string{
			"HX-Retarget": "#contact-form",
			"HX-Reswap":   "outerHTML",
			"HX-Push-Url": "false",
			"HX-Refresh":  "true",
		}
		for k, v := range want {
			if got := w.Header().Get(k); got != v {
				t.Errorf("%s = %q, want %q", k, got, v)
			}
		}
	})

	t.Run("plain triggers", func(t *testing.T) {
		t.Parallel()

		cfg := htmx.NewConfig(htmx.WithTrigger("a", "b"), htmx.WithTrigger("a"))
		w := httptest.NewRecorder()
		cfg.ApplyHeaders(w)

		if got := w.Header().Get("HX-Trigger"); got != "a, b" {
			t.Errorf("HX-Trigger = %q, want %q", got, "a, b")
		}
	})

	t.Run("triggers with detail", func(t *testing.T) {
		t.Parallel()

		cfg := htmx.NewConfig(
			htmx.WithTrigger("reset"),
			htmx.WithTriggerDetail("contact:sent", map[string]string{"id": "abc"}),
		)
		w := httptest.NewRecorder()
		cfg.ApplyHeaders(w)

		want := `{"contact:sent":{"id":"abc"},"reset":null}`
		if got := w.Header().Get("HX-Trigger"); got != want {
			t.Errorf("HX-Trigger = %q, want %q", got, want)
		}
	})
}

func TestRenderOOB(t *testing.T) {
	t.Parallel()

	t.Run("renders in order", func(t *testing.T) {
		t.Parallel()

		cfg := htmx.NewConfig(htmx.WithOOB(mockComponent{content: "<a/>"}, mockComponent{content: "<b/>"}))
		var buf bytes.Buffer
		if err := cfg.RenderOOB(context.Background(), &buf); err != nil {
			t.Fatalf("RenderOOB() error = %v", err)
		}
		if buf.String() != "<a/><b/>" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		cfg := htmx.NewConfig(htmx.WithOOB(mockComponent{err: boom}, mockComponent{content: "<b/>"}))
		var buf bytes.Buffer
		if err := cfg.RenderOOB(context.Background(), &buf); !errors.Is(err, boom) {
			t.Errorf("RenderOOB() error = %v, want %v", err, boom)
		}
		if buf.Len() != 0 {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}
