package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charlieallen/portfolio"
	"github.com/charlieallen/portfolio/middlewares"
	"github.com/charlieallen/portfolio/pkg/cache"
	"github.com/charlieallen/portfolio/pkg/contact"
	"github.com/charlieallen/portfolio/pkg/health"
	"github.com/charlieallen/portfolio/pkg/logger"
	"github.com/charlieallen/portfolio/pkg/mailer"
	"github.com/charlieallen/portfolio/pkg/mailer/postmark"
	"github.com/charlieallen/portfolio/pkg/mailer/resend"
	"github.com/charlieallen/portfolio/pkg/mailer/ses"
	"github.com/charlieallen/portfolio/pkg/ratelimit"
	"github.com/charlieallen/portfolio/pkg/redis"
)

// deps are the collaborators shared by the serve and lambda commands.
type deps struct {
	logger  *slog.Logger
	service *contact.Service
	limiter *ratelimit.Limiter
	checks  health.Checks
	closers []func(context.Context) error
}

func newLogger(cfg Config) *slog.Logger {
	return logger.NewFromConfig(cfg.Logger, os.Stdout, middlewares.RequestIDExtractor())
}

func newDeps(ctx context.Context, cfg Config, log *slog.Logger) (*deps, error) {
	d := &deps{logger: log, checks: health.Checks{}}

	sender, err := newSender(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	m := mailer.New(sender, cfg.Mailer, mailer.WithLogger(log.With(slog.String("component", "mailer"))))
	d.service = contact.NewService(m, cfg.Contact, contact.WithLogger(log.With(slog.String("component", "contact"))))
	d.checks["mailer"] = mailerCheck(cfg.Mailer)

	if !cfg.RateLimit.Enabled {
		return d, nil
	}

	var counter cache.Counter
	if cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("rate limit store: %w", err)
		}
		counter = cache.NewRedisCounter(client, cache.WithPrefix("portfolio:ratelimit:"))
		d.checks["redis"] = redis.Healthcheck(client)
		d.closers = append(d.closers, redis.Shutdown(client))
	} else {
		mc := cache.NewMemoryCounter()
		counter = mc
		d.closers = append(d.closers, func(context.Context) error { return mc.Close() })
	}

	d.limiter, err = ratelimit.NewFromConfig(counter, cfg.RateLimit)
	if err != nil {
		return nil, errors.Join(err, d.close(ctx))
	}
	return d, nil
}

// rateLimit returns the middleware, or nothing when limiting is disabled.
func (d *deps) rateLimit() []portfolio.Middleware {
	if d.limiter == nil {
		return nil
	}
	return []portfolio.Middleware{middlewares.RateLimit(d.limiter)}
}

func (d *deps) close(ctx context.Context) error {
	var errs []error
	for _, fn := range d.closers {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}

// newSender picks the delivery provider named by MAILER_PROVIDER.
func newSender(ctx context.Context, cfg Config, log *slog.Logger) (mailer.Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Mailer.Provider)) {
	case mailer.ProviderSES:
		s, err := ses.New(ctx, cfg.SES)
		if err != nil {
			return nil, err
		}
		return s, nil
	case mailer.ProviderResend:
		s, err := resend.New(cfg.Resend)
		if err != nil {
			return nil, err
		}
		return s, nil
	case mailer.ProviderPostmark:
		s, err := postmark.New(cfg.Postmark)
		if err != nil {
			return nil, err
		}
		return s, nil
	case mailer.ProviderLog:
		logSender := mailer.NewLogSender(log)
		if cfg.Mailer.OutboxDir == "" {
			return logSender, nil
		}
		dir := mailer.NewDirSender(cfg.Mailer.OutboxDir)
		return mailer.SenderFunc(func(ctx context.Context, email *mailer.Email) error {
			if err := dir.Send(ctx, email); err != nil {
				return err
			}
			return logSender.Send(ctx, email)
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, cfg.Mailer.Provider)
	}
}

func mailerCheck(cfg mailer.Config) health.CheckFunc {
	return func(context.Context) error {
		if cfg.SenderEmail == "" {
			return errMissingSender
		}
		return nil
	}
}
