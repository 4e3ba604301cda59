package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charlieallen/portfolio/pkg/logger"
)

// Mailer decorates a Sender with defaults, validation and logging.
// It implements Sender itself.
type Mailer struct {
	sender Sender
	config Config
	logger *slog.Logger
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer around sender.
func New(sender Sender, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		config: cfg,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send fills the default sender, validates the message and delivers it once.
// Provider failures are wrapped with ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if email == nil {
		return ErrNoContent
	}
	if email.From == "" {
		email.From = m.config.From()
	}
	if err := email.Validate(); err != nil {
		return err
	}

	start := time.Now()
	if err := m.sender.Send(ctx, email); err != nil {
		m.logger.ErrorContext(ctx, "email delivery failed",
			slog.String("subject", email.Subject),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	m.logger.InfoContext(ctx, "email delivered",
		slog.Int("recipients", len(email.To)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}
