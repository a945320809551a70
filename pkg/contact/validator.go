package contact

import (
	"fmt"
	"regexp"
	"strings"
)

// Default validation thresholds.
const (
	DefaultNameMinLength    = 2
	DefaultNameMaxLength    = 100
	DefaultMessageMinLength = 10
	DefaultMessageMaxLength = 2000

	// maxEmailLength is the RFC 5321 address length cap.
	maxEmailLength = 254
)

var (
	// namePattern accepts letters (accented included), spaces, hyphens,
	// and apostrophes.
	namePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]+$`)

	// emailPattern is a lenient local@domain.tld shape check.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Submission is one untrusted contact form submission.
// It lives for the duration of a single request and is never persisted.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ValidationResult reports the outcome of validating a submission.
// A field absent from Errors passed validation.
type ValidationResult struct {
	Errors map[string]string `json:"errors"`
	Valid  bool              `json:"isValid"`
}

// Config holds the per-field validation thresholds.
type Config struct {
	NameMinLength    int
	NameMaxLength    int
	MessageMinLength int
	MessageMaxLength int
}

// DefaultConfig returns the documented default thresholds.
func DefaultConfig() Config {
	return Config{
		NameMinLength:    DefaultNameMinLength,
		NameMaxLength:    DefaultNameMaxLength,
		MessageMinLength: DefaultMessageMinLength,
		MessageMaxLength: DefaultMessageMaxLength,
	}
}

// Validator applies the validation rules of a Config.
// It is stateless and safe for concurrent use.
type Validator struct {
	cfg Config
}

// NewValidator creates a Validator, filling unset thresholds with defaults.
func NewValidator(cfg Config) *Validator {
	def := DefaultConfig()
	if cfg.NameMinLength <= 0 {
		cfg.NameMinLength = def.NameMinLength
	}
	if cfg.NameMaxLength <= 0 {
		cfg.NameMaxLength = def.NameMaxLength
	}
	if cfg.MessageMinLength <= 0 {
		cfg.MessageMinLength = def.MessageMinLength
	}
	if cfg.MessageMaxLength <= 0 {
		cfg.MessageMaxLength = def.MessageMaxLength
	}
	return &Validator{cfg: cfg}
}

// ValidateName checks the name field.
// Returns an empty string when valid.
func (v *Validator) ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Name is required"
	}

	length := len([]rune(trimmed))
	if length < v.cfg.NameMinLength {
		return fmt.Sprintf("Name must be at least %d characters long", v.cfg.NameMinLength)
	}
	if length > v.cfg.NameMaxLength {
		return fmt.Sprintf("Name must be no more than %d characters long", v.cfg.NameMaxLength)
	}

	if !namePattern.MatchString(trimmed) {
		return "Name can only contain letters, spaces, hyphens, and apostrophes"
	}

	return ""
}

// ValidateEmail checks the email field.
// Returns an empty string when valid.
func (v *Validator) ValidateEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "Email is required"
	}

	if !emailPattern.MatchString(trimmed) {
		return "Please enter a valid email address"
	}

	if len(trimmed) > maxEmailLength {
		return "Email address is too long"
	}

	// Known bypass of the shape pattern above.
	if strings.Contains(trimmed, "..") {
		return "Email address cannot contain consecutive dots"
	}

	return ""
}

// ValidateMessage checks the message field.
// Returns an empty string when valid.
func (v *Validator) ValidateMessage(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "Message is required"
	}

	length := len([]rune(trimmed))
	if length < v.cfg.MessageMinLength {
		return fmt.Sprintf("Message must be at least %d characters long", v.cfg.MessageMinLength)
	}
	if length > v.cfg.MessageMaxLength {
		return fmt.Sprintf("Message must be no more than %d characters long", v.cfg.MessageMaxLength)
	}

	return ""
}

// Validate runs every field rule and unions the results.
// It never short-circuits: all applicable errors are reported together.
func (v *Validator) Validate(s Submission) ValidationResult {
	errs := make(map[string]string)

	if msg := v.ValidateName(s.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := v.ValidateEmail(s.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := v.ValidateMessage(s.Message); msg != "" {
		errs["message"] = msg
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Sanitize trims leading and trailing whitespace from every field.
// Internal whitespace is untouched; the operation is idempotent.
func Sanitize(s Submission) Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// IsEmpty reports whether all fields are blank, distinguishing an untouched
// form from an invalid submission.
func IsEmpty(s Submission) bool {
	return strings.TrimSpace(s.Name) == "" &&
		strings.TrimSpace(s.Email) == "" &&
		strings.TrimSpace(s.Message) == ""
}
