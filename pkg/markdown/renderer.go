package markdown

import (
	"bytes"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to sanitized HTML.
// It is immutable after creation and safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// Option configures a Renderer during construction.
type Option func(*config)

type config struct {
	highlighter goldmark.Extender
	policy      *bluemonday.Policy
	style       string
}

// WithHighlighter swaps the syntax highlighter used for fenced code blocks.
func WithHighlighter(ext goldmark.Extender) Option {
	return func(c *config) {
		c.highlighter = ext
	}
}

// WithStyle sets the chroma style of the default highlighter.
// Ignored when a custom highlighter is supplied.
func WithStyle(style string) Option {
	return func(c *config) {
		c.style = style
	}
}

// WithPolicy overrides the HTML sanitization policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

// NewRenderer creates a markdown renderer with GFM extensions, syntax
// highlighting, and a UGC sanitization policy that keeps highlight markup.
func NewRenderer(opts ...Option) *Renderer {
	cfg := &config{style: "github"}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.highlighter == nil {
		cfg.highlighter = highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.style),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		)
	}

	if cfg.policy == nil {
		policy := bluemonday.UGCPolicy()
		// Chroma emits class-annotated spans inside pre/code blocks.
		policy.AllowAttrs("class").OnElements("pre", "code", "span", "div")
		cfg.policy = policy
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, cfg.highlighter),
			goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe()),
		),
		policy: cfg.policy,
	}
}

// Render converts a markdown body to sanitized HTML.
// A conversion failure falls back to an escaped <pre> block.
func (r *Renderer) Render(src []byte) string {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "<pre>" + html.EscapeString(string(src)) + "</pre>"
	}
	return r.policy.Sanitize(buf.String())
}
