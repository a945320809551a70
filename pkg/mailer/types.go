package mailer

import "time"

// Data is the validated contact submission an email is composed from.
type Data struct {
	Name    string
	Email   string
	Message string

	// Subject overrides the default subject line when set.
	Subject string

	// Timestamp defaults to the current time when zero.
	Timestamp time.Time

	// Locale selects the date/time formatting of the displayed timestamp.
	Locale string
}

// Template is a composed email: subject plus HTML and text renderings.
type Template struct {
	Subject string
	HTML    string
	Text    string
}

// Message is a fully-prepared email ready for a Sender.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Result is the observable outcome of one delivery attempt.
type Result struct {
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
	Success   bool   `json:"success"`
}
