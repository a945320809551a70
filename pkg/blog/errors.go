package blog

import "errors"

var (
	// ErrPostNotFound indicates the requested post is missing, malformed,
	// or not published.
	ErrPostNotFound = errors.New("post not found")

	// ErrTranslationNotFound indicates no published counterpart exists for
	// the translation ID in the target locale.
	ErrTranslationNotFound = errors.New("translation not found")
)
