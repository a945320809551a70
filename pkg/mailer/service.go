package mailer

import (
	"context"
	"log/slog"
	"strings"
)

// Service runs the contact email pipeline: configuration gate, template
// composition, delivery. It is stateless and safe for concurrent use.
type Service struct {
	sender Sender
	log    *slog.Logger
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithLogger sets the logger for delivery diagnostics.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a Service delivering through the given sender.
func NewService(sender Sender, opts ...ServiceOption) *Service {
	s := &Service{
		sender: sender,
		log:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Send runs one submission through the pipeline.
//
// An invalid configuration fails closed: no delivery is attempted and every
// violation is reported. Delivery failures capture the transport error
// verbatim; callers decide what to surface to end users.
func (s *Service) Send(ctx context.Context, cfg Config, data Data) Result {
	if violations := cfg.Validate(); len(violations) > 0 {
		joined := strings.Join(violations, ", ")
		s.log.ErrorContext(ctx, "email configuration rejected",
			slog.String("violations", joined))
		return Result{Error: "Configuration error: " + joined}
	}

	tpl := NewTemplate(data)

	msg := &Message{
		From:    cfg.From,
		To:      cfg.To,
		ReplyTo: data.Email,
		Subject: tpl.Subject,
		HTML:    tpl.HTML,
		Text:    tpl.Text,
	}

	id, err := s.sender.Send(ctx, cfg, msg)
	if err != nil {
		s.log.ErrorContext(ctx, "email delivery failed",
			slog.String("host", cfg.Host),
			slog.String("error", err.Error()))
		return Result{Error: err.Error()}
	}

	s.log.InfoContext(ctx, "email delivered", slog.String("message_id", id))
	return Result{Success: true, MessageID: id}
}
