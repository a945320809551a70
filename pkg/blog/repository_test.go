package blog_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanchan/website/pkg/blog"
)

// htmlRenderer is a stand-in for the markdown renderer.
type htmlRenderer struct{}

func (htmlRenderer) Render(src []byte) string {
	return "<p>" + string(src) + "</p>"
}

func postFile(fields ...string) *fstest.MapFile {
	data := "---\n"
	for _, f := range fields {
		data += f + "\n"
	}
	data += "---\nbody text\n"
	return &fstest.MapFile{Data: []byte(data)}
}

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"fr/premier.md": postFile(
			`title: "Premier article"`,
			"date: 2024-03-01",
			"tags: [go, web]",
			"category: Dev",
			"published: true",
			"translation_id: intro",
		),
		"fr/deuxieme.md": postFile(
			`title: "Deuxième article"`,
			"date: 2024-05-10",
			"tags: [web]",
			"published: true",
		),
		"fr/brouillon.md": postFile(
			"title: Brouillon",
			"date: 2024-06-01",
			"published: false",
		),
		"fr/casse.md": {Data: []byte("no frontmatter here\n")},
		"fr/index.md": postFile("title: Index", "published: true"),
		"en/first.md": postFile(
			`title: "First post"`,
			"date: 2024-03-02",
			"published: true",
			"translation_id: intro",
		),
	}
}

func TestRepository_ListMetadata(t *testing.T) {
	t.Parallel()

	repo := blog.NewRepository(contentFS(), htmlRenderer{})

	posts, err := repo.ListMetadata(context.Background(), "fr")
	require.NoError(t, err)

	// Unpublished, malformed, and index.md entries are excluded.
	require.Len(t, posts, 2)

	// Sorted by date descending.
	assert.Equal(t, "deuxieme", posts[0].Slug)
	assert.Equal(t, "premier", posts[1].Slug)

	// Defaults applied.
	assert.Equal(t, blog.DefaultAuthor, posts[0].Author)
	assert.Equal(t, blog.DefaultCategory, posts[0].Category)
	assert.Equal(t, blog.DefaultReadingTime, posts[0].ReadingTime)
	assert.Equal(t, "Dev", posts[1].Category)
}

func TestRepository_ListMetadata_UnknownLocale(t *testing.T) {
	t.Parallel()

	repo := blog.NewRepository(contentFS(), htmlRenderer{})

	_, err := repo.ListMetadata(context.Background(), "de")
	require.Error(t, err)
}

func TestRepository_ListMetadata_InvalidDateSortsLast(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/dated.md":   postFile("title: Dated", "date: 2020-01-01", "published: true"),
		"en/undated.md": postFile("title: Undated", "date: not-a-date", "published: true"),
	}
	repo := blog.NewRepository(fsys, htmlRenderer{})

	posts, err := repo.ListMetadata(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "dated", posts[0].Slug)
	assert.Equal(t, "undated", posts[1].Slug)
}

func TestRepository_LoadPost(t *testing.T) {
	t.Parallel()

	repo := blog.NewRepository(contentFS(), htmlRenderer{})

	t.Run("published post renders body", func(t *testing.T) {
		t.Parallel()

		post, err := repo.LoadPost(context.Background(), "premier", "fr")
		require.NoError(t, err)
		assert.Equal(t, "Premier article", post.Title)
		assert.Equal(t, []string{"go", "web"}, post.Tags)
		assert.Equal(t, "<p>body text\n</p>", post.Content)
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()

		_, err := repo.LoadPost(context.Background(), "nope", "fr")
		require.ErrorIs(t, err, blog.ErrPostNotFound)
	})

	t.Run("unpublished post is not found", func(t *testing.T) {
		t.Parallel()

		_, err := repo.LoadPost(context.Background(), "brouillon", "fr")
		require.ErrorIs(t, err, blog.ErrPostNotFound)
	})

	t.Run("malformed post is not found", func(t *testing.T) {
		t.Parallel()

		_, err := repo.LoadPost(context.Background(), "casse", "fr")
		require.ErrorIs(t, err, blog.ErrPostNotFound)
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := repo.LoadPost(context.Background(), "../en/first", "fr")
		require.ErrorIs(t, err, blog.ErrPostNotFound)
	})
}

func TestRepository_FindTranslation(t *testing.T) {
	t.Parallel()

	repo := blog.NewRepository(contentFS(), htmlRenderer{})

	t.Run("counterpart found", func(t *testing.T) {
		t.Parallel()

		meta, err := repo.FindTranslation(context.Background(), "intro", "en")
		require.NoError(t, err)
		assert.Equal(t, "first", meta.Slug)
	})

	t.Run("no counterpart", func(t *testing.T) {
		t.Parallel()

		_, err := repo.FindTranslation(context.Background(), "unknown", "en")
		require.ErrorIs(t, err, blog.ErrTranslationNotFound)
	})

	t.Run("empty translation id", func(t *testing.T) {
		t.Parallel()

		_, err := repo.FindTranslation(context.Background(), "", "en")
		require.ErrorIs(t, err, blog.ErrTranslationNotFound)
	})
}

func TestRepository_Options(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/post.md": postFile("title: Post", "published: true"),
	}
	repo := blog.NewRepository(fsys, htmlRenderer{},
		blog.WithDefaultAuthor("Jane Doe"),
		blog.WithDefaultCategory("Notes"),
		blog.WithDefaultReadingTime(2),
	)

	posts, err := repo.ListMetadata(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Jane Doe", posts[0].Author)
	assert.Equal(t, "Notes", posts[0].Category)
	assert.Equal(t, 2, posts[0].ReadingTime)
}
