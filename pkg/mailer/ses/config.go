package ses

// Config holds Amazon SES provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Region           string `env:"AWS_REGION" envDefault:"eu-west-2"`
	ConfigurationSet string `env:"SES_CONFIGURATION_SET"`
	// Static credentials are optional; the default AWS credential chain is used when empty.
	AccessKey string `env:"SES_ACCESS_KEY_ID"`
	SecretKey string `env:"SES_SECRET_ACCESS_KEY"`
}
