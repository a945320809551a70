package frontmatter

import "errors"

// ErrMalformedContent indicates the content does not start with a properly
// delimited metadata block followed by a body.
var ErrMalformedContent = errors.New("malformed content: missing frontmatter block")
