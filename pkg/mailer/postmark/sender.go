package postmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/charlieallen/portfolio/pkg/mailer"
)

var (
	ErrInvalidConfig = errors.New("postmark: invalid configuration")
	ErrSendFailed    = errors.New("postmark: send failed")
)

// API is the subset of the Postmark client used by Sender.
type API interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// Sender implements mailer.Sender using the Postmark API.
type Sender struct {
	api    API
	stream string
}

// New creates a Postmark-backed sender.
func New(cfg Config) (*Sender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: server token is required", ErrInvalidConfig)
	}
	return NewWithClient(postmark.NewClient(cfg.ServerToken, cfg.AccountToken), cfg), nil
}

// NewWithClient creates a sender around an existing Postmark client.
func NewWithClient(api API, cfg Config) *Sender {
	return &Sender{api: api, stream: cfg.MessageStream}
}

// Send implements mailer.Sender.
// Postmark accepts a single tag, so only the first tag name is forwarded.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	resp, err := s.api.SendEmail(ctx, s.buildEmail(email))
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}

func (s *Sender) buildEmail(email *mailer.Email) postmark.Email {
	msg := postmark.Email{
		From:          email.From,
		To:            strings.Join(email.To, ","),
		Cc:            strings.Join(email.CC, ","),
		Bcc:           strings.Join(email.BCC, ","),
		ReplyTo:       email.ReplyTo,
		Subject:       email.Subject,
		HTMLBody:      email.HTML,
		TextBody:      email.Text,
		MessageStream: s.stream,
	}
	if names := email.Tags.Names(); len(names) > 0 {
		msg.Tag = names[0]
		msg.Metadata = make(map[string]string, len(names))
		for _, name := range names {
			msg.Metadata[name] = email.Tags.Value(name)
		}
	}
	for name, value := range email.Headers {
		msg.Headers = append(msg.Headers, postmark.Header{Name: name, Value: value})
	}
	return msg
}
