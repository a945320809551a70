// Package mock provides a recording mailer.Sender for tests and local
// development. It keeps every composed message in an in-memory log and can
// be armed to fail deterministically, so the pipeline's failure path is
// testable without a network.
package mock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johanchan/website/pkg/mailer"
)

// SentEmail is one recorded delivery.
type SentEmail struct {
	Config  mailer.Config
	Message mailer.Message
	SentAt  time.Time
}

// Sender implements mailer.Sender with an in-memory log.
// Appends are mutex-guarded; concurrent sends are all recorded exactly once.
type Sender struct {
	mu         sync.Mutex
	sent       []SentEmail
	shouldFail bool
	failReason string
}

// NewSender creates a recording sender.
func NewSender() *Sender {
	return &Sender{failReason: "Mock failure"}
}

// SetFailure arms or disarms simulated delivery failure.
// An empty reason keeps the previous one.
func (s *Sender) SetFailure(shouldFail bool, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shouldFail = shouldFail
	if reason != "" {
		s.failReason = reason
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(_ context.Context, cfg mailer.Config, msg *mailer.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shouldFail {
		return "", errors.New(s.failReason)
	}

	s.sent = append(s.sent, SentEmail{
		Config:  cfg,
		Message: *msg,
		SentAt:  time.Now(),
	})

	return "mock-" + uuid.NewString(), nil
}

// SentEmails returns a copy of the log in send order.
func (s *Sender) SentEmails() []SentEmail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentEmail(nil), s.sent...)
}

// LastSent returns the most recent recorded delivery.
func (s *Sender) LastSent() (SentEmail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) == 0 {
		return SentEmail{}, false
	}
	return s.sent[len(s.sent)-1], true
}

// Clear drops the recorded log.
func (s *Sender) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
}
