// Package logger builds the application logger: structured JSON on stdout,
// optionally mirrored to Sentry, with request-scoped attributes injected
// from context on every log call.
package logger
