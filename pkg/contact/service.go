package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/charlieallen/portfolio/pkg/logger"
	"github.com/charlieallen/portfolio/pkg/mailer"
)

// Config holds relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Recipient  string `env:"RECIPIENT_EMAIL" envDefault:"hello@charlieallen.dev"`
	NameMax    int    `env:"CONTACT_NAME_MAX" envDefault:"100"`
	MessageMin int    `env:"CONTACT_MESSAGE_MIN" envDefault:"0"`
	MessageMax int    `env:"CONTACT_MESSAGE_MAX" envDefault:"5000"`
}

// Rules returns the configured limits, falling back to RelayRules for unset values.
func (c Config) Rules() Rules {
	r := RelayRules()
	if c.NameMax > 0 {
		r.NameMax = c.NameMax
	}
	if c.MessageMax > 0 {
		r.MessageMax = c.MessageMax
	}
	if c.MessageMin > 0 {
		r.MessageMin = c.MessageMin
	}
	return r
}

// Receipt confirms an accepted submission.
type Receipt struct {
	ID     string    `json:"id"`
	SentAt time.Time `json:"sent_at"`
}

// Service validates submissions and relays them through a mailer.Sender.
// It holds no per-submission state and is safe for concurrent use.
type Service struct {
	sender mailer.Sender
	cfg    Config
	rules  Rules
	logger *slog.Logger
	newID  func() string
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the UUID submission ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService creates a relay service.
func NewService(sender mailer.Sender, cfg Config, opts ...Option) *Service {
	if cfg.Recipient == "" {
		cfg.Recipient = "hello@charlieallen.dev"
	}
	s := &Service{
		sender: sender,
		cfg:    cfg,
		rules:  cfg.Rules(),
		logger: logger.NewNope(),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the limits Submit enforces.
func (s *Service) Rules() Rules {
	return s.rules
}

// Submit validates sub and sends exactly one notification email.
// Invalid submissions return a *ValidationError and send nothing.
// A failed dispatch returns a *DeliveryError; it is not retried.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Receipt, error) {
	if err := Validate(sub, s.rules); err != nil {
		s.logger.InfoContext(ctx, "contact submission rejected", slog.String("reason", err.Error()))
		return nil, err
	}
	sub = Normalize(sub)

	id := s.newID()
	email, err := Compose(sub, Envelope{To: s.cfg.Recipient, SubmissionID: id})
	if err != nil {
		return nil, err
	}

	if err := s.sender.Send(ctx, email); err != nil {
		s.logger.ErrorContext(ctx, "contact message not sent",
			slog.String("submission_id", id),
			slog.String("error", err.Error()),
		)
		return nil, &DeliveryError{Err: err}
	}

	s.logger.InfoContext(ctx, "contact message sent", slog.String("submission_id", id))
	return &Receipt{ID: id, SentAt: s.now().UTC()}, nil
}
