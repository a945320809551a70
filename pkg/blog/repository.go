package blog

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/johanchan/website/pkg/frontmatter"
)

// maxParallelReads caps concurrent file parsing during a listing.
const maxParallelReads = 8

// Renderer converts a markdown body to HTML.
type Renderer interface {
	Render(src []byte) string
}

// Repository reads markdown posts from a directory-per-locale filesystem
// ({locale}/{slug}.md). It performs read-only access and holds no mutable
// state, so a single instance serves concurrent requests.
type Repository struct {
	fsys     fs.FS
	renderer Renderer
	log      *slog.Logger
	defaults metadataDefaults
}

// Option configures a Repository during construction.
type Option func(*Repository)

// WithLogger sets the logger used for skipped-item warnings.
func WithLogger(log *slog.Logger) Option {
	return func(r *Repository) {
		if log != nil {
			r.log = log
		}
	}
}

// WithDefaultAuthor overrides the fallback author identity.
func WithDefaultAuthor(author string) Option {
	return func(r *Repository) {
		r.defaults.author = author
	}
}

// WithDefaultCategory overrides the fallback category.
func WithDefaultCategory(category string) Option {
	return func(r *Repository) {
		r.defaults.category = category
	}
}

// WithDefaultReadingTime overrides the fallback reading time in minutes.
func WithDefaultReadingTime(minutes int) Option {
	return func(r *Repository) {
		if minutes > 0 {
			r.defaults.readingTime = minutes
		}
	}
}

// NewRepository creates a post repository over the given content filesystem.
func NewRepository(fsys fs.FS, renderer Renderer, opts ...Option) *Repository {
	r := &Repository{
		fsys:     fsys,
		renderer: renderer,
		log:      slog.New(slog.DiscardHandler),
		defaults: metadataDefaults{
			author:      DefaultAuthor,
			category:    DefaultCategory,
			readingTime: DefaultReadingTime,
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ListMetadata returns the published posts of a locale, sorted by date
// descending. Items that fail to read or parse are skipped with a warning;
// ties keep file order (the sort is stable).
func (r *Repository) ListMetadata(ctx context.Context, locale string) ([]PostMetadata, error) {
	entries, err := fs.ReadDir(r.fsys, locale)
	if err != nil {
		return nil, fmt.Errorf("listing posts for locale %q: %w", locale, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") || name == "index.md" {
			continue
		}
		names = append(names, name)
	}

	parsed := make([]*PostMetadata, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			meta, err := r.readMetadata(locale, name)
			if err != nil {
				r.log.WarnContext(ctx, "skipping malformed post",
					slog.String("locale", locale),
					slog.String("file", name),
					slog.String("error", err.Error()))
				return nil
			}

			parsed[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	posts := make([]PostMetadata, 0, len(parsed))
	for _, meta := range parsed {
		if meta != nil && meta.Published {
			posts = append(posts, *meta)
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt().After(posts[j].PublishedAt())
	})

	return posts, nil
}

// LoadPost loads one post and renders its body to HTML.
// Missing, malformed, and unpublished posts all surface as ErrPostNotFound.
func (r *Repository) LoadPost(ctx context.Context, slug, locale string) (*Post, error) {
	if !validSlug(slug) {
		return nil, ErrPostNotFound
	}

	raw, err := fs.ReadFile(r.fsys, path.Join(locale, slug+".md"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrPostNotFound, locale, slug)
	}

	meta, body, err := frontmatter.Parse(string(raw))
	if err != nil {
		r.log.WarnContext(ctx, "failed to parse post",
			slog.String("locale", locale),
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s/%s", ErrPostNotFound, locale, slug)
	}

	metadata := newPostMetadata(slug, meta, r.defaults)
	if !metadata.Published {
		return nil, fmt.Errorf("%w: %s/%s", ErrPostNotFound, locale, slug)
	}

	return &Post{
		PostMetadata: metadata,
		Content:      r.renderer.Render([]byte(body)),
	}, nil
}

// FindTranslation returns the published counterpart sharing translationID in
// the target locale.
func (r *Repository) FindTranslation(ctx context.Context, translationID, targetLocale string) (*PostMetadata, error) {
	if translationID == "" {
		return nil, ErrTranslationNotFound
	}

	posts, err := r.ListMetadata(ctx, targetLocale)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		if post.TranslationID == translationID {
			return &post, nil
		}
	}

	return nil, fmt.Errorf("%w: %s in %s", ErrTranslationNotFound, translationID, targetLocale)
}

func (r *Repository) readMetadata(locale, name string) (*PostMetadata, error) {
	raw, err := fs.ReadFile(r.fsys, path.Join(locale, name))
	if err != nil {
		return nil, err
	}

	meta, _, err := frontmatter.Parse(string(raw))
	if err != nil {
		return nil, err
	}

	metadata := newPostMetadata(strings.TrimSuffix(name, ".md"), meta, r.defaults)
	return &metadata, nil
}

// validSlug rejects anything that could escape the locale directory.
func validSlug(slug string) bool {
	return slug != "" && !strings.ContainsAny(slug, "/\\") && !strings.Contains(slug, "..")
}
