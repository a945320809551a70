package blog

import (
	"time"

	"github.com/johanchan/website/pkg/frontmatter"
)

// Default metadata fallbacks, applied when a frontmatter field is absent or
// has the wrong shape.
const (
	DefaultTitle       = "Untitled"
	DefaultAuthor      = "Johan Conan"
	DefaultCategory    = "General"
	DefaultReadingTime = 5
)

// PostMetadata describes one content item without its rendered body.
type PostMetadata struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Excerpt       string   `json:"excerpt"`
	Date          string   `json:"date"`
	Author        string   `json:"author"`
	Category      string   `json:"category"`
	TranslationID string   `json:"translationId,omitempty"`
	Tags          []string `json:"tags"`
	ReadingTime   int      `json:"readingTime"`
	Featured      bool     `json:"featured"`
	Published     bool     `json:"published"`
}

// Post is PostMetadata plus the body rendered to HTML.
type Post struct {
	PostMetadata
	Content string `json:"content"`
}

// Date layouts accepted for post ordering, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// PublishedAt parses the Date field for ordering.
// Invalid or missing dates return the zero time, sorting epoch-oldest.
func (m PostMetadata) PublishedAt() time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, m.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}

// metadataDefaults holds the configurable fallback values a Repository
// applies while decoding frontmatter.
type metadataDefaults struct {
	author      string
	category    string
	readingTime int
}

// newPostMetadata maps a parsed frontmatter block onto typed metadata,
// applying fallbacks for absent or mistyped fields.
func newPostMetadata(slug string, meta frontmatter.Metadata, d metadataDefaults) PostMetadata {
	tags := meta["tags"].Strings()
	if tags == nil {
		tags = []string{}
	}

	readingTime := meta["readingTime"].IntOr(d.readingTime)
	if readingTime <= 0 {
		readingTime = d.readingTime
	}

	translationID := meta["translation_id"].String("")
	if translationID == "" {
		translationID = meta["translationId"].String("")
	}

	return PostMetadata{
		Slug:          slug,
		Title:         meta["title"].String(DefaultTitle),
		Description:   meta["description"].String(""),
		Excerpt:       meta["excerpt"].String(""),
		Date:          meta["date"].String(""),
		Author:        meta["author"].String(d.author),
		Category:      meta["category"].String(d.category),
		TranslationID: translationID,
		Tags:          tags,
		ReadingTime:   readingTime,
		Featured:      meta["featured"].BoolOr(false),
		Published:     meta["published"].BoolOr(false),
	}
}
