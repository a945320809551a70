// Package smtp implements mailer.Sender over SMTP, with optional DKIM
// signing of outgoing messages.
package smtp

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	dkimmw "github.com/wneessen/go-mail-middleware/dkim"

	"github.com/johanchan/website/pkg/mailer"
)

// DefaultTimeout bounds one delivery attempt so a stuck SMTP conversation
// cannot hang a request indefinitely.
const DefaultTimeout = 30 * time.Second

// Sender delivers messages through an SMTP server described by the
// per-send mailer.Config.
type Sender struct {
	timeout time.Duration
}

// Option configures a Sender during construction.
type Option func(*Sender)

// WithTimeout overrides the per-delivery timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Sender) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewSender creates an SMTP sender.
func NewSender(opts ...Option) *Sender {
	s := &Sender{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, cfg mailer.Config, msg *mailer.Message) (string, error) {
	var msgOpts []mail.MsgOption
	if cfg.DKIM != nil {
		mw, err := s.dkimMiddleware(cfg.DKIM)
		if err != nil {
			return "", err
		}
		msgOpts = append(msgOpts, mail.WithMiddleware(mw))
	}

	m := mail.NewMsg(msgOpts...)
	if err := m.From(msg.From); err != nil {
		return "", fmt.Errorf("smtp: invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return "", fmt.Errorf("smtp: invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return "", fmt.Errorf("smtp: invalid reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	m.SetMessageID()

	client, err := s.client(cfg)
	if err != nil {
		return "", err
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("smtp: delivery failed: %w", err)
	}

	return m.GetMessageID(), nil
}

func (s *Sender) client(cfg mailer.Config) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(s.timeout),
	}

	if cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		// Local relays (mailpit and friends) rarely offer STARTTLS.
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if cfg.Auth != nil {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Auth.User),
			mail.WithPassword(cfg.Auth.Pass),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: creating client: %w", err)
	}
	return client, nil
}

func (s *Sender) dkimMiddleware(cfg *mailer.DKIM) (*dkimmw.Middleware, error) {
	sc, err := dkimmw.NewConfig(cfg.Domain, cfg.Selector)
	if err != nil {
		return nil, fmt.Errorf("smtp: dkim config: %w", err)
	}

	mw, err := dkimmw.NewFromRSAKey([]byte(cfg.PrivateKey), sc)
	if err != nil {
		return nil, fmt.Errorf("smtp: dkim key: %w", err)
	}

	return mw, nil
}
