// Package frontmatter parses the delimited metadata block at the top of a
// content file into typed values and returns the remaining body.
//
// The format is deliberately lenient: a block of `key: value` lines between
// two `---` delimiter lines. Values are coerced by shape (list, bool, number,
// quoted string) into a tagged Value union; lines without a colon are skipped
// rather than rejected. This is not a YAML parser and not a schema validator.
package frontmatter
