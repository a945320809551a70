package blog

import (
	"regexp"
	"strings"
)

// wordsPerMinute is the reading speed assumed for reading-time estimates.
const wordsPerMinute = 200

// DefaultExcerptLength is the maximum excerpt length in characters.
const DefaultExcerptLength = 150

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ReadingTime estimates how many minutes the content takes to read,
// rounded up and never below one.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Excerpt strips markup from content and truncates it to maxLength
// characters at the last complete word, appending an ellipsis.
// A maxLength of zero or less uses DefaultExcerptLength.
func Excerpt(content string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	plain := tagPattern.ReplaceAllString(content, "")

	runes := []rune(plain)
	if len(runes) <= maxLength {
		return plain
	}

	truncated := string(runes[:maxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}
