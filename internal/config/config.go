// Package config loads the application configuration from environment
// variables into explicit structs. Nothing here is ambient: the loaded
// values are passed to constructors, keeping the pipelines testable.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/johanchan/website/pkg/logger"
	"github.com/johanchan/website/pkg/mailer"
	"github.com/johanchan/website/pkg/mailer/resend"
)

// defaultSMTPPort matches the mailpit development relay.
const defaultSMTPPort = 1025

// Config is the full application configuration.
type Config struct {
	Env           string   `env:"APP_ENV" envDefault:"development"`
	Host          string   `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port          int      `env:"SERVER_PORT" envDefault:"8080"`
	SiteURL       string   `env:"SITE_URL" envDefault:"https://johan-chan.fr"`
	ContentDir    string   `env:"CONTENT_DIR" envDefault:"./content"`
	DefaultLocale string   `env:"DEFAULT_LOCALE" envDefault:"fr"`
	Locales       []string `env:"LOCALES" envDefault:"fr,en"`

	// MailProvider selects the transport: smtp, resend, or mock.
	MailProvider string `env:"MAIL_PROVIDER" envDefault:"smtp"`

	Logger logger.Config
	Resend resend.Config
	SMTP   SMTP
}

// SMTP mirrors the environment contract of the original deployment,
// mailpit fallbacks included.
type SMTP struct {
	Host        string `env:"SMTP_HOST"`
	MailpitHost string `env:"MAILPIT_HOST"`
	Port        int    `env:"SMTP_PORT"`
	MailpitPort int    `env:"MAILPIT_PORT"`
	Secure      bool   `env:"SMTP_SECURE"`
	User        string `env:"SMTP_USER"`
	Pass        string `env:"SMTP_PASS"`

	From string `env:"CONTACT_EMAIL_FROM"`
	To   string `env:"CONTACT_EMAIL_TO"`

	DKIMDomain     string `env:"DKIM_DOMAIN_NAME"`
	DKIMSelector   string `env:"DKIM_KEY_SELECTOR"`
	DKIMPrivateKey string `env:"DKIM_PRIVATE_KEY"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EmailConfig assembles the transport configuration for the mailer.
// It reports false when no usable configuration is present (missing host,
// from, or to) — an unconfigured site is not an error, the contact endpoint
// just reports the service unavailable.
func (c *Config) EmailConfig() (mailer.Config, bool) {
	host := c.SMTP.Host
	if host == "" {
		host = c.SMTP.MailpitHost
	}

	port := c.SMTP.Port
	if port == 0 {
		port = c.SMTP.MailpitPort
	}
	if port == 0 {
		port = defaultSMTPPort
	}

	if host == "" || c.SMTP.From == "" || c.SMTP.To == "" {
		return mailer.Config{}, false
	}

	cfg := mailer.Config{
		Host:   host,
		Port:   port,
		Secure: c.SMTP.Secure,
		From:   c.SMTP.From,
		To:     c.SMTP.To,
	}

	if c.SMTP.User != "" && c.SMTP.Pass != "" {
		cfg.Auth = &mailer.Auth{User: c.SMTP.User, Pass: c.SMTP.Pass}
	}

	if c.SMTP.DKIMDomain != "" && c.SMTP.DKIMSelector != "" && c.SMTP.DKIMPrivateKey != "" {
		cfg.DKIM = &mailer.DKIM{
			Domain:     c.SMTP.DKIMDomain,
			Selector:   c.SMTP.DKIMSelector,
			PrivateKey: c.SMTP.DKIMPrivateKey,
		}
	}

	return cfg, true
}
