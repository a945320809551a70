package mailer

import "context"

// Sender delivers a composed message using the given transport
// configuration and returns the provider's message identifier.
//
// Implementations must treat the configuration as already validated; the
// Service gates every send behind Config.Validate.
type Sender interface {
	Send(ctx context.Context, cfg Config, msg *Message) (string, error)
}
