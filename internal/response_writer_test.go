package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	require.Equal(t, http.StatusNotFound, rw.Status())
	require.Equal(t, http.StatusNotFound, w.Code)
	require.True(t, rw.Written())
}

func TestResponseWriter_HTMX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
	}{
		{"ok", http.StatusOK},
		{"bad request", http.StatusBadRequest},
		{"unprocessable", http.StatusUnprocessableEntity},
		{"server error", http.StatusInternalServerError},
		{"see other", http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			rw := NewResponseWriter(w, true)
			rw.WriteHeader(tt.code)

			require.Equal(t, tt.code, rw.Status())
			require.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	require.False(t, rw.Written())

	n, err := rw.Write([]byte("hello "))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	_, err = rw.Write([]byte("world"))
	require.NoError(t, err)

	require.True(t, rw.Written())
	require.Equal(t, int64(11), rw.Size())
	require.Equal(t, http.StatusOK, rw.Status())
	require.Equal(t, "hello world", w.Body.String())
}

func TestResponseWriter_Passthrough(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.Header().Set("X-Test", "value")
	require.Equal(t, "value", w.Header().Get("X-Test"))

	rw.Flush()
	require.True(t, w.Flushed)

	require.Same(t, w, rw.Unwrap())

	_, _, err := rw.Hijack()
	require.ErrorIs(t, err, http.ErrNotSupported)
}
