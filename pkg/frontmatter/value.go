package frontmatter

import (
	"strconv"
	"strings"
)

// Kind discriminates the coerced type of a metadata value.
type Kind int

// Value kinds, in coercion precedence order.
const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindStringList
)

// Value is a tagged union holding one coerced metadata value.
// Only the field matching Kind is meaningful.
type Value struct {
	Str  string
	List []string
	Num  float64
	Kind Kind
	Bool bool
}

// String returns the string value, or fallback when the value is not a string.
func (v Value) String(fallback string) string {
	if v.Kind != KindString {
		return fallback
	}
	return v.Str
}

// BoolOr returns the boolean value, or fallback when the value is not a bool.
func (v Value) BoolOr(fallback bool) bool {
	if v.Kind != KindBool {
		return fallback
	}
	return v.Bool
}

// IntOr returns the numeric value truncated to int, or fallback when the
// value is not a number.
func (v Value) IntOr(fallback int) int {
	if v.Kind != KindNumber {
		return fallback
	}
	return int(v.Num)
}

// Strings returns the list value. Original order is preserved.
// Returns nil when the value is not a list.
func (v Value) Strings() []string {
	if v.Kind != KindStringList {
		return nil
	}
	return v.List
}

// coerceValue sniffs the shape of a raw scalar and produces a tagged Value:
// [..] lists, true/false booleans, full numbers, then quoted/plain strings.
func coerceValue(raw string) Value {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		return Value{Kind: KindStringList, List: splitList(raw[1 : len(raw)-1])}
	}

	if raw == "true" || raw == "false" {
		return Value{Kind: KindBool, Bool: raw == "true"}
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Kind: KindNumber, Num: n}
	}

	return Value{Kind: KindString, Str: unquote(raw)}
}

func splitList(inner string) []string {
	if strings.TrimSpace(inner) == "" {
		return []string{}
	}

	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		items = append(items, unquote(strings.TrimSpace(p)))
	}
	return items
}

// unquote strips one pair of matching surrounding quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
