package middlewares_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio/internal"
	"github.com/charlieallen/portfolio/middlewares"
	"github.com/charlieallen/portfolio/pkg/id"
	"github.com/charlieallen/portfolio/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	echo := func(c internal.Context) error {
		return c.String(http.StatusOK, middlewares.GetRequestID(c))
	}

	t.Run("generates ULID", func(t *testing.T) {
		t.Parallel()

		rec, err := run(httptest.NewRequest(http.MethodGet, "/", nil), echo, middlewares.RequestID())
		require.NoError(t, err)

		got := rec.Body.String()
		require.Len(t, got, 26)
		require.Equal(t, got, rec.Header().Get("X-Request-ID"))
		_, err = id.ULIDTime(got)
		require.NoError(t, err)
	})

	t.Run("reuses upstream header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Amzn-Trace-Id", "Root=1-67891233-abcdef012345678912345678")
		rec, err := run(req, echo, middlewares.RequestID())

		require.NoError(t, err)
		require.Equal(t, "Root=1-67891233-abcdef012345678912345678", rec.Body.String())
	})

	t.Run("rejects malformed upstream id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "bad id\nwith newline")
		rec, err := run(req, echo, middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "fixed" })))

		require.NoError(t, err)
		require.Equal(t, "fixed", rec.Body.String())
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Trace", "abc123")
		rec, err := run(req, echo, middlewares.RequestID(
			middlewares.WithRequestIDHeaders("X-Trace"),
			middlewares.WithRequestIDResponseHeader("X-Trace"),
		))

		require.NoError(t, err)
		require.Equal(t, "abc123", rec.Body.String())
		require.Equal(t, "abc123", rec.Header().Get("X-Trace"))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewFromConfig(logger.Config{Format: "json", Level: "debug"}, &buf, middlewares.RequestIDExtractor())

	app := internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "req-42" }))),
		internal.WithHandlers(routeFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				c.LogInfo("hello")
				return c.NoContent(http.StatusOK)
			})
		})),
	)

	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, strings.Contains(buf.String(), `"request_id":"req-42"`), buf.String())

	_, ok := middlewares.RequestIDExtractor()(t.Context())
	require.False(t, ok)
}
