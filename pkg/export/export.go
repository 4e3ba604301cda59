package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/charlieallen/portfolio/pkg/id"
	"github.com/charlieallen/portfolio/pkg/logger"
	"github.com/charlieallen/portfolio/pkg/storage"
	"github.com/charlieallen/portfolio/views"
)

const (
	// DefaultConcurrency is the number of files written at once.
	DefaultConcurrency = 4

	CacheHTML   = "public, max-age=0, must-revalidate"
	CacheAssets = "public, max-age=31536000, immutable"
	CacheMeta   = "public, max-age=86400"

	// ManifestKey records the build that produced the export.
	ManifestKey = "build.json"
)

// Manifest describes one export run.
type Manifest struct {
	BuildID string    `json:"build_id"`
	BuiltAt time.Time `json:"built_at"`
	Files   []string  `json:"files"`
}

// Exporter writes the rendered site to a store.
type Exporter struct {
	views       *views.Views
	store       storage.Storage
	logger      *slog.Logger
	concurrency int
	now         func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConcurrency overrides DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(e *Exporter) {
		if fn != nil {
			e.now = fn
		}
	}
}

func New(v *views.Views, store storage.Storage, opts ...Option) *Exporter {
	e := &Exporter{
		views:       v,
		store:       store,
		logger:      logger.NewNope(),
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// file is one object of the export, rendered lazily.
type file struct {
	key          string
	cacheControl string
	render       func(ctx context.Context) ([]byte, error)
}

// Export renders and writes every file, then the manifest. The first
// failure cancels the remaining writes.
func (e *Exporter) Export(ctx context.Context) (*Manifest, error) {
	builtAt := e.now().UTC()
	manifest := &Manifest{BuildID: id.ULIDAt(builtAt), BuiltAt: builtAt}

	files, err := e.files(builtAt)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for _, f := range files {
		g.Go(func() error {
			data, err := f.render(gctx)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrRender, f.key, err)
			}
			if err := e.put(gctx, f.key, data, f.cacheControl); err != nil {
				return err
			}

			mu.Lock()
			manifest.Files = append(manifest.Files, f.key)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(manifest.Files)
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWrite, ManifestKey, err)
	}
	if err := e.put(ctx, ManifestKey, data, CacheHTML); err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "site exported",
		slog.String("build_id", manifest.BuildID),
		slog.Int("files", len(manifest.Files)),
		slog.Duration("elapsed", e.now().Sub(builtAt)),
	)
	return manifest, nil
}

func (e *Exporter) put(ctx context.Context, key string, data []byte, cacheControl string) error {
	_, err := e.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)),
		storage.WithCacheControl(cacheControl),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, key, err)
	}
	e.logger.DebugContext(ctx, "exported file", slog.String("key", key), slog.Int("bytes", len(data)))
	return nil
}

func (e *Exporter) files(builtAt time.Time) ([]file, error) {
	var files []file

	for _, p := range views.Routes {
		component, ok := e.views.Page(p)
		if !ok {
			return nil, fmt.Errorf("%w: no page for %s", ErrRender, p)
		}
		files = append(files, file{
			key:          PageKey(p),
			cacheControl: CacheHTML,
			render:       renderComponent(component),
		})
	}

	files = append(files,
		file{key: "404.html", cacheControl: CacheHTML, render: renderComponent(e.views.NotFound())},
		file{key: "robots.txt", cacheControl: CacheMeta, render: func(context.Context) ([]byte, error) {
			return e.views.RobotsTXT(), nil
		}},
		file{key: "sitemap.xml", cacheControl: CacheMeta, render: func(context.Context) ([]byte, error) {
			return e.views.SitemapXML(builtAt)
		}},
	)

	static := views.Static()
	err := fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		files = append(files, file{
			key:          views.AssetPath(p),
			cacheControl: CacheAssets,
			render: func(context.Context) ([]byte, error) {
				return fs.ReadFile(static, p)
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: static assets: %v", ErrRender, err)
	}
	return files, nil
}

func renderComponent(c templ.Component) func(context.Context) ([]byte, error) {
	return func(ctx context.Context) ([]byte, error) {
		var buf bytes.Buffer
		if err := c.Render(ctx, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

// PageKey maps a site path to its object key: "/" is index.html and
// "/about" is about/index.html.
func PageKey(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "index.html"
	}
	return path.Join(p, "index.html")
}
