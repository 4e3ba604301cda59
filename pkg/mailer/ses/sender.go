package ses

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/charlieallen/portfolio/pkg/mailer"
)

const charset = "UTF-8"

// API is the subset of the SES client used by Sender.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Sender implements mailer.Sender using Amazon SES.
type Sender struct {
	api API
	cfg Config
}

// New creates an SES sender using the default AWS credential chain,
// or static credentials when both keys are configured.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", ErrInvalidConfig)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return NewWithClient(ses.NewFromConfig(awsCfg), cfg), nil
}

// NewWithClient creates a sender around an existing SES client.
func NewWithClient(api API, cfg Config) *Sender {
	return &Sender{api: api, cfg: cfg}
}

// Send implements mailer.Sender.
// SES SendEmail has no custom header support, so Email.Headers are not transmitted.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if _, err := s.api.SendEmail(ctx, s.buildInput(email)); err != nil {
		return wrapSESError(err)
	}
	return nil
}

func (s *Sender) buildInput(email *mailer.Email) *ses.SendEmailInput {
	body := &types.Body{}
	if email.Text != "" {
		body.Text = content(email.Text)
	}
	if email.HTML != "" {
		body.Html = content(email.HTML)
	}

	input := &ses.SendEmailInput{
		Source: aws.String(email.From),
		Destination: &types.Destination{
			ToAddresses:  email.To,
			CcAddresses:  email.CC,
			BccAddresses: email.BCC,
		},
		Message: &types.Message{
			Subject: content(email.Subject),
			Body:    body,
		},
	}
	if email.ReplyTo != "" {
		input.ReplyToAddresses = []string{email.ReplyTo}
	}
	if s.cfg.ConfigurationSet != "" {
		input.ConfigurationSetName = aws.String(s.cfg.ConfigurationSet)
	}
	for _, name := range email.Tags.Names() {
		input.Tags = append(input.Tags, types.MessageTag{
			Name:  aws.String(name),
			Value: aws.String(email.Tags.Value(name)),
		})
	}
	return input
}

func content(data string) *types.Content {
	return &types.Content{Data: aws.String(data), Charset: aws.String(charset)}
}
