// Package mailer composes and delivers contact form notification emails.
//
// A Service runs the full pipeline for one submission: validate the
// transport configuration (fail-closed, all violations collected), render
// the dual HTML/text template, and hand the composed message to a Sender.
// Two sender families exist: real transports (smtp, resend) and a recording
// mock for tests, selected by configuration rather than inheritance.
//
// The template rendering is deliberately asymmetric: the HTML body escapes
// every user-supplied value, while the text body preserves the original
// content byte-for-byte since plain text carries no markup-injection risk.
//
// The service performs no retries; retry policy belongs to the caller.
package mailer
