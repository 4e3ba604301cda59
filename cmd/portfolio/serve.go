package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/pkg/logger"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Serve the site pages, the contact form and the JSON contact API.

The form works without JavaScript (Post/Redirect/Get) and upgrades to
htmx partial updates when the library is loaded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServe(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides HTTP_ADDR)")
	return cmd
}

func runServe(cmd *cobra.Command, cfg Config) error {
	ctx := cmd.Context()
	log := newLogger(cfg)
	defer logger.Flush(2 * time.Second)

	d, err := newDeps(ctx, cfg, log)
	if err != nil {
		return err
	}

	v, err := loadViews()
	if err != nil {
		return err
	}
	if cfg.Server.CookieSecret == "" {
		log.Warn("COOKIE_SECRET is not set, the contact form renders results in place")
	}

	app := newServerApp(cfg, d, v, time.Now())
	log.Info("starting server", slog.String("addr", cfg.Server.Addr))

	return app.Run(cfg.Server.Addr,
		portfolio.Logger(log),
		portfolio.WithContext(ctx),
		portfolio.ShutdownTimeout(cfg.Server.ShutdownTimeout),
		portfolio.ShutdownHook(d.close),
	)
}
