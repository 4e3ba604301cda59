package export_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlieallen/portfolio/pkg/content"
	"github.com/charlieallen/portfolio/pkg/export"
	"github.com/charlieallen/portfolio/pkg/id"
	"github.com/charlieallen/portfolio/pkg/storage"
	"github.com/charlieallen/portfolio/site"
	"github.com/charlieallen/portfolio/views"
)

var builtAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return builtAt }

func newViews(t *testing.T) *views.Views {
	t.Helper()
	s, err := content.Load(site.FS)
	require.NoError(t, err)
	v, err := views.New(s,
		views.WithClock(clock),
		views.WithContactEndpoint("https://api.example.com/contact"),
	)
	require.NoError(t, err)
	return v
}

func TestExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.NewLocal(dir)
	require.NoError(t, err)

	m, err := export.New(newViews(t), store, export.WithClock(clock)).Export(context.Background())
	require.NoError(t, err)

	ts, err := id.ULIDTime(m.BuildID)
	require.NoError(t, err)
	assert.Equal(t, builtAt.UnixMilli(), ts.UnixMilli())

	for _, key := range []string{
		"index.html",
		"about/index.html",
		"projects/index.html",
		"contact/index.html",
		"404.html",
		"robots.txt",
		"sitemap.xml",
		"static/site.css",
		"static/contact.js",
	} {
		assert.Contains(t, m.Files, key)
		assert.FileExists(t, filepath.Join(dir, key))
	}
	assert.NotContains(t, m.Files, export.ManifestKey)
	assert.IsNonDecreasing(t, m.Files)

	contactPage, err := os.ReadFile(filepath.Join(dir, "contact", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(contactPage), `data-endpoint="https://api.example.com/contact"`)
	assert.NotContains(t, string(contactPage), "hx-post")

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "Page not found")

	sitemap, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<lastmod>2026-05-01</lastmod>")

	raw, err := os.ReadFile(filepath.Join(dir, export.ManifestKey))
	require.NoError(t, err)
	var stored export.Manifest
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, m.BuildID, stored.BuildID)
	assert.Equal(t, m.Files, stored.Files)
}

func TestPageKey(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/":          "index.html",
		"":           "index.html",
		"/about":     "about/index.html",
		"/projects/": "projects/index.html",
	}
	for in, want := range tests {
		assert.Equal(t, want, export.PageKey(in), in)
	}
}

type failingStore struct {
	failKey string
}

func (s failingStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ ...storage.Option) (*storage.FileInfo, error) {
	if key == s.failKey {
		return nil, storage.ErrUploadFailed
	}
	n, err := io.Copy(io.Discard, r)
	return &storage.FileInfo{Key: key, Size: n}, err
}

func (failingStore) Get(context.Context, string) (io.ReadCloser, error) {
	return nil, storage.ErrNotFound
}

func (failingStore) Delete(context.Context, string) error { return nil }

func TestExport_WriteFailure(t *testing.T) {
	t.Parallel()

	_, err := export.New(newViews(t), failingStore{failKey: "about/index.html"}).Export(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrWrite)
	assert.ErrorIs(t, err, storage.ErrUploadFailed)
}

func TestExport_ManifestFailure(t *testing.T) {
	t.Parallel()

	_, err := export.New(newViews(t), failingStore{failKey: export.ManifestKey}).Export(context.Background())
	assert.True(t, errors.Is(err, export.ErrWrite))
}
