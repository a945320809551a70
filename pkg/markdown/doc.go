// Package markdown converts markdown bodies to sanitized HTML.
//
// Fenced code blocks receive syntax-highlight markup from a pluggable
// highlighter (chroma-backed by default). Conversion failures degrade to an
// HTML-escaped preformatted block instead of propagating, so a broken code
// sample can never take a page down.
package markdown
