package seo

import "strings"

// Meta is the SEO metadata attached to a page response.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Type        string `json:"type"`
}

// ArticleMeta builds the metadata for a blog post page.
// Keywords are the post tags joined with commas.
func ArticleMeta(title, description string, tags []string) Meta {
	return Meta{
		Title:       title + " | Blog Johan Chan",
		Description: description,
		Keywords:    strings.Join(tags, ", "),
		Type:        "article",
	}
}

// PageMeta builds the metadata for a non-article page.
func PageMeta(title, description, keywords string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Type:        "website",
	}
}
