package mailer

import (
	"html"
	"strings"
	"time"

	"github.com/johanchan/website/pkg/i18n"
)

// siteName appears in the footer of every notification email.
const siteName = "johan-chan.fr"

// NewTemplate composes the subject, HTML, and text renderings for a
// submission. The subject defaults to a per-sender line, the timestamp
// defaults to now, and timestamps are formatted for the submission locale.
func NewTemplate(data Data) Template {
	timestamp := data.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	displayed := i18n.FormatFor(data.Locale).DateTime(timestamp)

	subject := data.Subject
	if subject == "" {
		subject = "New contact form submission from " + data.Name
	}

	return Template{
		Subject: subject,
		HTML:    renderHTML(data, displayed),
		Text:    renderText(data, displayed),
	}
}

// renderHTML builds the injection-safe rendering: every user-supplied value
// is HTML-escaped, and the message block preserves line breaks visually.
func renderHTML(data Data, timestamp string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Contact Form Submission</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
.field { margin-bottom: 15px; }
.label { font-weight: bold; color: #555; }
.value { margin-top: 5px; padding: 10px; background-color: #f8f9fa; border-radius: 4px; }
.message { white-space: pre-wrap; }
.footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
<div class="header">
<h2>New Contact Form Submission</h2>
<p>Received on `)
	b.WriteString(html.EscapeString(timestamp))
	b.WriteString(`</p>
</div>
<div class="field">
<div class="label">Name:</div>
<div class="value">`)
	b.WriteString(html.EscapeString(data.Name))
	b.WriteString(`</div>
</div>
<div class="field">
<div class="label">Email:</div>
<div class="value">`)
	b.WriteString(html.EscapeString(data.Email))
	b.WriteString(`</div>
</div>
<div class="field">
<div class="label">Message:</div>
<div class="value message">`)
	b.WriteString(html.EscapeString(data.Message))
	b.WriteString(`</div>
</div>
<div class="footer">
<p>This email was sent from the contact form on ` + siteName + `</p>
</div>
</div>
</body>
</html>`)

	return b.String()
}

// renderText builds the content-faithful rendering: original values verbatim,
// no escaping, so the message survives byte-for-byte.
func renderText(data Data, timestamp string) string {
	var b strings.Builder

	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString("Received on: " + timestamp + "\n\n")
	b.WriteString("Name: " + data.Name + "\n")
	b.WriteString("Email: " + data.Email + "\n\n")
	b.WriteString("Message:\n" + data.Message + "\n\n")
	b.WriteString("---\nThis email was sent from the contact form on " + siteName)

	return b.String()
}
