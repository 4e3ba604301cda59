package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio/pkg/cookie"
)

const testSecret = "this-is-a-32-byte-or-longer-key!"

// roundTrip copies cookies set on w onto a new request.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestPlainCookies(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "missing")
		assert.ErrorIs(t, err, cookie.ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.Set(w, "theme", "dark", 3600)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

		v, err := m.Get(roundTrip(w), "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", v)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.Delete(w, "theme")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})
}

func TestSignedCookies(t *testing.T) {
	t.Parallel()

	t.Run("requires secret", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret("short"))
		assert.False(t, m.CanSign())
		assert.ErrorIs(t, m.SetSigned(httptest.NewRecorder(), "a", "b", 0), cookie.ErrNoSecret)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(testSecret))
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sent", "1", 60))

		v, err := m.GetSigned(roundTrip(w), "sent")
		require.NoError(t, err)
		assert.Equal(t, "1", v)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(testSecret))
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "sent", "1", 60))

		c := w.Result().Cookies()[0]
		_, sig, _ := strings.Cut(c.Value, ".")
		c.Value = "MA." + sig

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(c)
		_, err := m.GetSigned(r, "sent")
		assert.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("value bound to name", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(testSecret))
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "a", "1", 60))

		c := w.Result().Cookies()[0]
		c.Name = "b"
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(c)

		_, err := m.GetSigned(r, "b")
		assert.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecret(testSecret))
		err := m.SetSigned(httptest.NewRecorder(), "big", strings.Repeat("x", 4096), 0)
		assert.ErrorIs(t, err, cookie.ErrTooLarge)
	})
}

func TestFlash(t *testing.T) {
	t.Parallel()

	type notice struct {
		Sent bool   `json:"sent"`
		ID   string `json:"id"`
	}

	m := cookie.New(cookie.WithSecret(testSecret))

	w := httptest.NewRecorder()
	require.NoError(t, m.SetFlash(w, "contact", notice{Sent: true, ID: "abc"}))

	r := roundTrip(w)
	w2 := httptest.NewRecorder()

	var got notice
	require.NoError(t, m.Flash(w2, r, "contact", &got))
	assert.Equal(t, notice{Sent: true, ID: "abc"}, got)

	deleted := w2.Result().Cookies()
	require.Len(t, deleted, 1)
	assert.Equal(t, "flash_contact", deleted[0].Name)
	assert.Negative(t, deleted[0].MaxAge)

	_, err := m.GetSigned(httptest.NewRequest(http.MethodGet, "/", nil), "flash_contact")
	assert.ErrorIs(t, err, cookie.ErrNotFound)
}
