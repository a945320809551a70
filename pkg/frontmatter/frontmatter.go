package frontmatter

import "strings"

// Metadata holds the coerced key/value pairs from a frontmatter block.
type Metadata map[string]Value

// Parse splits raw content into a frontmatter Metadata map and the body.
// The content must open with a `---` line and contain a closing `---` line
// followed by the body; anything else fails with ErrMalformedContent.
//
// Inside the block, each `key: value` line is coerced via coerceValue.
// Lines without a colon are ignored.
func Parse(raw string) (Metadata, string, error) {
	nl := strings.IndexByte(raw, '\n')
	if nl < 0 || !isDelimiter(raw[:nl]) {
		return nil, "", ErrMalformedContent
	}

	rest := raw[nl+1:]

	offset := 0
	for {
		end := strings.IndexByte(rest[offset:], '\n')
		if end < 0 {
			// Closing delimiter never found on its own line before EOF,
			// or found as the very last line with no body newline after it.
			return nil, "", ErrMalformedContent
		}

		line := rest[offset : offset+end]
		if isDelimiter(line) {
			block := ""
			if offset > 0 {
				block = rest[:offset-1]
			}
			return parseBlock(block), rest[offset+end+1:], nil
		}

		offset += end + 1
	}
}

// isDelimiter reports whether a line is a frontmatter delimiter,
// allowing trailing whitespace (and the \r of CRLF files).
func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == "---"
}

func parseBlock(block string) Metadata {
	meta := make(Metadata)

	for _, line := range strings.Split(block, "\n") {
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}

		key := strings.TrimSpace(line[:colon])
		if key == "" {
			continue
		}

		meta[key] = coerceValue(strings.TrimSpace(line[colon+1:]))
	}

	return meta
}
