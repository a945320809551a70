package frontmatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johanchan/website/pkg/frontmatter"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("full post", func(t *testing.T) {
		t.Parallel()

		raw := "---\n" +
			"title: \"Hello World\"\n" +
			"date: 2024-03-15\n" +
			"tags: [go, web, \"testing\"]\n" +
			"published: true\n" +
			"readingTime: 7\n" +
			"---\n" +
			"# Heading\n\nBody text.\n"

		meta, body, err := frontmatter.Parse(raw)
		require.NoError(t, err)

		assert.Equal(t, "Hello World", meta["title"].String(""))
		assert.Equal(t, "2024-03-15", meta["date"].String(""))
		assert.Equal(t, []string{"go", "web", "testing"}, meta["tags"].Strings())
		assert.True(t, meta["published"].BoolOr(false))
		assert.Equal(t, 7, meta["readingTime"].IntOr(0))
		assert.Equal(t, "# Heading\n\nBody text.\n", body)
	})

	t.Run("missing opening delimiter", func(t *testing.T) {
		t.Parallel()

		_, _, err := frontmatter.Parse("title: nope\n---\nbody\n")
		require.ErrorIs(t, err, frontmatter.ErrMalformedContent)
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		t.Parallel()

		_, _, err := frontmatter.Parse("---\ntitle: nope\nbody without end\n")
		require.ErrorIs(t, err, frontmatter.ErrMalformedContent)
	})

	t.Run("closing delimiter must be followed by a newline", func(t *testing.T) {
		t.Parallel()

		_, _, err := frontmatter.Parse("---\ntitle: x\n---")
		require.ErrorIs(t, err, frontmatter.ErrMalformedContent)
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		t.Parallel()

		meta, body, err := frontmatter.Parse("---\ntitle: x\n---\n")
		require.NoError(t, err)
		assert.Equal(t, "x", meta["title"].String(""))
		assert.Empty(t, body)
	})

	t.Run("lines without a colon are skipped", func(t *testing.T) {
		t.Parallel()

		meta, _, err := frontmatter.Parse("---\njust some text\ntitle: ok\n---\nbody")
		require.NoError(t, err)
		assert.Len(t, meta, 1)
		assert.Equal(t, "ok", meta["title"].String(""))
	})

	t.Run("crlf content", func(t *testing.T) {
		t.Parallel()

		meta, body, err := frontmatter.Parse("---\r\ntitle: win\r\n---\r\nbody\r\n")
		require.NoError(t, err)
		assert.Equal(t, "win", meta["title"].String(""))
		assert.Equal(t, "body\r\n", body)
	})

	t.Run("value with colon keeps everything after the first", func(t *testing.T) {
		t.Parallel()

		meta, _, err := frontmatter.Parse("---\ntitle: Go: The Good Parts\n---\nbody")
		require.NoError(t, err)
		assert.Equal(t, "Go: The Good Parts", meta["title"].String(""))
	})
}

func TestValueCoercion(t *testing.T) {
	t.Parallel()

	parseOne := func(t *testing.T, line string) frontmatter.Value {
		t.Helper()
		meta, _, err := frontmatter.Parse("---\nkey: " + line + "\n---\nbody")
		require.NoError(t, err)
		return meta["key"]
	}

	t.Run("booleans", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, frontmatter.KindBool, parseOne(t, "true").Kind)
		assert.True(t, parseOne(t, "true").BoolOr(false))
		assert.False(t, parseOne(t, "false").BoolOr(true))

		// Anything but the exact literals stays a string.
		assert.Equal(t, frontmatter.KindString, parseOne(t, "True").Kind)
	})

	t.Run("numbers", func(t *testing.T) {
		t.Parallel()

		v := parseOne(t, "42")
		assert.Equal(t, frontmatter.KindNumber, v.Kind)
		assert.Equal(t, 42, v.IntOr(0))

		assert.Equal(t, frontmatter.KindNumber, parseOne(t, "3.5").Kind)
		assert.Equal(t, frontmatter.KindString, parseOne(t, "12abc").Kind)
	})

	t.Run("lists preserve order and unquote items", func(t *testing.T) {
		t.Parallel()

		v := parseOne(t, `[beta, 'alpha', "gamma"]`)
		assert.Equal(t, frontmatter.KindStringList, v.Kind)
		assert.Equal(t, []string{"beta", "alpha", "gamma"}, v.Strings())
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		v := parseOne(t, "[]")
		assert.Equal(t, frontmatter.KindStringList, v.Kind)
		assert.Empty(t, v.Strings())
	})

	t.Run("matching quotes are stripped", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "quoted", parseOne(t, `"quoted"`).String(""))
		assert.Equal(t, "quoted", parseOne(t, `'quoted'`).String(""))
		// Mismatched quotes stay as-is.
		assert.Equal(t, `"half`, parseOne(t, `"half`).String(""))
	})

	t.Run("typed accessors fall back across kinds", func(t *testing.T) {
		t.Parallel()

		v := parseOne(t, "plain text")
		assert.Equal(t, "plain text", v.String("fallback"))
		assert.True(t, v.BoolOr(true))
		assert.Equal(t, 5, v.IntOr(5))
		assert.Nil(t, v.Strings())
	})
}
