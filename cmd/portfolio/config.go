package main

import (
	"errors"
	"time"

	"github.com/charlieallen/portfolio/pkg/config"
	"github.com/charlieallen/portfolio/pkg/contact"
	"github.com/charlieallen/portfolio/pkg/logger"
	"github.com/charlieallen/portfolio/pkg/mailer"
	"github.com/charlieallen/portfolio/pkg/mailer/postmark"
	"github.com/charlieallen/portfolio/pkg/mailer/resend"
	"github.com/charlieallen/portfolio/pkg/mailer/ses"
	"github.com/charlieallen/portfolio/pkg/ratelimit"
	"github.com/charlieallen/portfolio/pkg/redis"
	"github.com/charlieallen/portfolio/pkg/storage"
)

var errMissingSender = errors.New("SENDER_EMAIL is not set")

// Config is the process configuration. Nested structs are parsed without
// prefixes, so every package keeps its own env keys.
type Config struct {
	Server    ServerConfig
	Logger    logger.Config
	Mailer    mailer.Config
	SES       ses.Config
	Resend    resend.Config
	Postmark  postmark.Config
	Contact   contact.Config
	RateLimit ratelimit.Config
	Redis     redis.Config
	Storage   storage.Config
}

type ServerConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	AllowedOrigin   string        `env:"ALLOWED_ORIGIN" envDefault:"https://charlieallen.dev"`
	CookieSecret    string        `env:"COOKIE_SECRET"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"true"`
	ContactEndpoint string        `env:"CONTACT_API_ENDPOINT"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
