// Package i18n provides the small internationalization surface a bilingual
// site needs: locale negotiation from Accept-Language headers, YAML message
// catalogs with dotted-key lookup and fallback, and locale-aware date and
// time formatting.
//
// A Translator is immutable after construction and safe for concurrent use.
package i18n
