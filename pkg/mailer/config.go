package mailer

// Supported providers for Config.Provider.
const (
	ProviderSES      = "ses"
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderLog      = "log"
)

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Provider    string `env:"MAILER_PROVIDER" envDefault:"ses"`
	SenderEmail string `env:"SENDER_EMAIL"`
	SenderName  string `env:"SENDER_NAME"`
	// OutboxDir, when set, makes the log provider also write each message to disk.
	OutboxDir string `env:"MAILER_OUTBOX_DIR"`
}

// From returns the formatted default sender address.
func (c Config) From() string {
	return Recipient(c.SenderName, c.SenderEmail)
}
