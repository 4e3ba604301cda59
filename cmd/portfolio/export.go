package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/charlieallen/portfolio/pkg/export"
	"github.com/charlieallen/portfolio/pkg/storage"
	"github.com/charlieallen/portfolio/views"
)

var (
	errNoDestination = errors.New("export: set --dir or EXPORT_BUCKET")
	errNoEndpoint    = errors.New("export: the contact form needs --endpoint or CONTACT_API_ENDPOINT")
)

type exportOptions struct {
	dir      string
	bucket   string
	prefix   string
	endpoint string
}

func newExportCmd() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the site for static hosting",
		Long: `Render every page, robots.txt, sitemap.xml and the static assets into a
directory or an S3 bucket, laid out for CloudFront (about/index.html, 404.html).

The exported contact form posts to the relay endpoint with fetch.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			_, err = runExport(cmd.Context(), cfg, opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Write into this directory instead of S3")
	cmd.Flags().StringVar(&opts.bucket, "bucket", "", "S3 bucket (overrides EXPORT_BUCKET)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Key prefix inside the bucket (overrides EXPORT_PREFIX)")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Contact relay URL (overrides CONTACT_API_ENDPOINT)")
	return cmd
}

func runExport(ctx context.Context, cfg Config, opts exportOptions) (*export.Manifest, error) {
	log := newLogger(cfg)

	endpoint := cfg.Server.ContactEndpoint
	if opts.endpoint != "" {
		endpoint = opts.endpoint
	}
	if endpoint == "" {
		return nil, errNoEndpoint
	}

	store, err := exportStore(ctx, cfg.Storage, opts)
	if err != nil {
		return nil, err
	}

	v, err := loadViews(views.WithContactEndpoint(endpoint))
	if err != nil {
		return nil, err
	}

	m, err := export.New(v, store, export.WithLogger(log)).Export(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("export complete", slog.String("build_id", m.BuildID), slog.Int("files", len(m.Files)))
	return m, nil
}

func exportStore(ctx context.Context, cfg storage.Config, opts exportOptions) (storage.Storage, error) {
	if opts.dir != "" {
		l, err := storage.NewLocal(opts.dir)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		return l, nil
	}
	if opts.bucket != "" {
		cfg.Bucket = opts.bucket
	}
	if opts.prefix != "" {
		cfg.Prefix = opts.prefix
	}
	if cfg.Bucket == "" {
		return nil, errNoDestination
	}
	s, err := storage.NewS3(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return s, nil
}
