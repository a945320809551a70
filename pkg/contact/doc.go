// Package contact validates contact form submissions.
//
// Validation is errors-as-values: nothing panics or returns a Go error, every
// rule violation becomes a field-attributed message in a ValidationResult.
// All fields are always checked so a form can display every problem at once.
//
// The email pattern is deliberately lenient-approximate (it rejects some
// technically valid addresses such as IP-literal domains, and the
// consecutive-dot rule is stricter than the RFC). That behavior is the
// documented contract and must not be "fixed".
package contact
