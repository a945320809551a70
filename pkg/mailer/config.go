package mailer

import (
	"regexp"
	"strings"
)

// addressPattern mirrors the contact validator's lenient email shape check.
var addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Auth holds SMTP credentials.
type Auth struct {
	User string
	Pass string
}

// DKIM identifies the signing key for outgoing mail.
type DKIM struct {
	Domain     string
	Selector   string
	PrivateKey string // PEM-encoded
}

// Config describes one delivery target. It is passed explicitly to the
// Service per send; the package keeps no ambient configuration.
type Config struct {
	Host   string
	Port   int
	Secure bool
	From   string
	To     string
	Auth   *Auth
	DKIM   *DKIM
}

// Validate checks the configuration and returns every violation found.
// An empty slice means the configuration is usable.
func (c Config) Validate() []string {
	var errs []string

	if strings.TrimSpace(c.Host) == "" {
		errs = append(errs, "Email host is required")
	}

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, "Valid email port is required (1-65535)")
	}

	switch {
	case strings.TrimSpace(c.From) == "":
		errs = append(errs, "From email address is required")
	case !addressPattern.MatchString(c.From):
		errs = append(errs, "From email address must be valid")
	}

	switch {
	case strings.TrimSpace(c.To) == "":
		errs = append(errs, "To email address is required")
	case !addressPattern.MatchString(c.To):
		errs = append(errs, "To email address must be valid")
	}

	if c.Auth != nil {
		if strings.TrimSpace(c.Auth.User) == "" {
			errs = append(errs, "Auth user is required when auth is provided")
		}
		if strings.TrimSpace(c.Auth.Pass) == "" {
			errs = append(errs, "Auth password is required when auth is provided")
		}
	}

	if c.DKIM != nil {
		if strings.TrimSpace(c.DKIM.Domain) == "" {
			errs = append(errs, "DKIM domain name is required when DKIM is provided")
		}
		if strings.TrimSpace(c.DKIM.Selector) == "" {
			errs = append(errs, "DKIM key selector is required when DKIM is provided")
		}
		switch {
		case strings.TrimSpace(c.DKIM.PrivateKey) == "":
			errs = append(errs, "DKIM private key is required when DKIM is provided")
		case !strings.Contains(c.DKIM.PrivateKey, "BEGIN") || !strings.Contains(c.DKIM.PrivateKey, "END"):
			errs = append(errs, "DKIM private key must be in PEM format")
		}
	}

	return errs
}
