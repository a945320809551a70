package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanchan/website/pkg/contact"
)

func TestValidator_ValidateName(t *testing.T) {
	t.Parallel()

	v := contact.NewValidator(contact.Config{})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Name is required"},
		{"whitespace only", "   ", "Name is required"},
		{"too short", "J", "Name must be at least 2 characters long"},
		{"too long", strings.Repeat("a", 101), "Name must be no more than 100 characters long"},
		{"digits rejected", "John3", "Name can only contain letters, spaces, hyphens, and apostrophes"},
		{"symbols rejected", "John@Doe", "Name can only contain letters, spaces, hyphens, and apostrophes"},
		{"plain name", "John Doe", ""},
		{"accented name", "Éloïse Lefèvre", ""},
		{"hyphen and apostrophe", "Jean-Pierre O'Brien", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, v.ValidateName(tt.input))
		})
	}
}

func TestValidator_ValidateEmail(t *testing.T) {
	t.Parallel()

	v := contact.NewValidator(contact.Config{})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Email is required"},
		{"no at sign", "nobody.example.com", "Please enter a valid email address"},
		{"no tld", "nobody@example", "Please enter a valid email address"},
		{"space inside", "no body@example.com", "Please enter a valid email address"},
		{"too long", strings.Repeat("a", 250) + "@b.co", "Email address is too long"},
		{"consecutive dots", "john..doe@example.com", "Email address cannot contain consecutive dots"},
		{"consecutive dots in domain", "john@example..com", "Email address cannot contain consecutive dots"},
		{"valid", "john.doe@example.com", ""},
		{"valid short", "a@b.co", ""},
		{"surrounding whitespace trimmed", "  a@b.co  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, v.ValidateEmail(tt.input))
		})
	}
}

func TestValidator_ValidateMessage(t *testing.T) {
	t.Parallel()

	v := contact.NewValidator(contact.Config{})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Message is required"},
		{"too short", "hi there", "Message must be at least 10 characters long"},
		{"too long", strings.Repeat("a", 2001), "Message must be no more than 2000 characters long"},
		{"valid", "Hello, this is a real message.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, v.ValidateMessage(tt.input))
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	v := contact.NewValidator(contact.Config{})

	t.Run("all fields invalid reports every error", func(t *testing.T) {
		t.Parallel()

		result := v.Validate(contact.Submission{Name: "", Email: "bad", Message: "x"})
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 3)
		assert.Contains(t, result.Errors, "name")
		assert.Contains(t, result.Errors, "email")
		assert.Contains(t, result.Errors, "message")
	})

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()

		result := v.Validate(contact.Submission{
			Name:    "Jo",
			Email:   "a@b.co",
			Message: "Hello test",
		})
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})
}

func TestValidator_CustomThresholds(t *testing.T) {
	t.Parallel()

	v := contact.NewValidator(contact.Config{
		NameMinLength:    4,
		MessageMinLength: 3,
	})

	assert.Equal(t, "Name must be at least 4 characters long", v.ValidateName("Jo"))
	assert.Equal(t, "", v.ValidateMessage("abc"))
	// Unset thresholds keep their defaults.
	assert.Equal(t, "Name must be no more than 100 characters long",
		v.ValidateName(strings.Repeat("a", 101)))
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	in := contact.Submission{
		Name:    "  John Doe  ",
		Email:   "\tjohn@example.com\n",
		Message: "  line one\n\nline two  ",
	}

	out := contact.Sanitize(in)
	assert.Equal(t, "John Doe", out.Name)
	assert.Equal(t, "john@example.com", out.Email)
	assert.Equal(t, "line one\n\nline two", out.Message, "internal whitespace preserved")

	// Idempotent.
	assert.Equal(t, out, contact.Sanitize(out))
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, contact.IsEmpty(contact.Submission{}))
	assert.True(t, contact.IsEmpty(contact.Submission{Name: "  ", Email: "\t", Message: "\n"}))
	assert.False(t, contact.IsEmpty(contact.Submission{Name: "J"}))
	assert.False(t, contact.IsEmpty(contact.Submission{Message: "hello"}))
}
