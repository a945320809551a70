package seo

import (
	"encoding/xml"
	"fmt"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
)

// URL is a single entry in the sitemap.
type URL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// urlset is the root sitemap document.
type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// SitemapBuilder accumulates site URLs and renders the sitemap document.
type SitemapBuilder struct {
	siteURL string
	urls    []URL
}

// NewSitemapBuilder creates a builder for the given site base URL
// (no trailing slash).
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{siteURL: siteURL}
}

// AddHomepage adds the site root.
func (b *SitemapBuilder) AddHomepage() {
	b.urls = append(b.urls, URL{
		Loc:        b.siteURL + "/",
		ChangeFreq: ChangeFreqWeekly,
		Priority:   "1.0",
	})
}

// AddPage adds a static page by path (leading slash included).
func (b *SitemapBuilder) AddPage(path string) {
	b.urls = append(b.urls, URL{
		Loc:        b.siteURL + path,
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.7",
	})
}

// AddPost adds one blog post for a locale.
func (b *SitemapBuilder) AddPost(locale, slug string, published time.Time) {
	u := URL{
		Loc:        fmt.Sprintf("%s/%s/blog/%s", b.siteURL, locale, slug),
		ChangeFreq: ChangeFreqMonthly,
		Priority:   "0.8",
	}
	if !published.IsZero() {
		u.LastMod = published.Format("2006-01-02")
	}
	b.urls = append(b.urls, u)
}

// Build renders the sitemap XML document, header included.
func (b *SitemapBuilder) Build() ([]byte, error) {
	doc := urlset{XMLNS: XMLNamespace, URLs: b.urls}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("seo: marshaling sitemap: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
