package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/johanchan/website/pkg/blog"
	"github.com/johanchan/website/pkg/i18n"
	"github.com/johanchan/website/pkg/seo"
)

// listPosts returns the published posts for a locale, newest first.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	posts, err := h.repo.ListMetadata(r.Context(), locale)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list posts",
			slog.String("locale", locale),
			slog.String("error", err.Error()))
		h.respondError(w, r, http.StatusInternalServerError, h.translator.T(locale, "errors.internal"))
		return
	}

	h.respondJSON(w, r, http.StatusOK, map[string]any{
		"posts": posts,
		"seo": seo.PageMeta(
			h.translator.T(locale, "blog.page_title"),
			h.translator.T(locale, "blog.page_description"),
			"",
		),
	})
}

// getPost returns a single post with its related posts, localized display
// date, and links to translations in the other locales.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	locale, ok := h.locale(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	slug := chi.URLParam(r, "slug")

	post, err := h.repo.LoadPost(r.Context(), slug, locale)
	if err != nil {
		h.respondError(w, r, http.StatusNotFound, h.translator.T(locale, "blog.not_found"))
		return
	}

	pool, err := h.repo.ListMetadata(r.Context(), locale)
	if err != nil {
		h.log.WarnContext(r.Context(), "failed to load related post pool",
			slog.String("locale", locale),
			slog.String("error", err.Error()))
		pool = nil
	}
	related := blog.RelatedPosts(post.PostMetadata, pool, blog.DefaultRelatedLimit)

	translations := map[string]string{}
	if post.TranslationID != "" {
		for _, other := range h.locales {
			if other == locale {
				continue
			}
			match, err := h.repo.FindTranslation(r.Context(), post.TranslationID, other)
			if err != nil {
				continue
			}
			translations[other] = match.Slug
		}
	}

	h.respondJSON(w, r, http.StatusOK, map[string]any{
		"post":         post,
		"relatedPosts": related,
		"translations": translations,
		"displayDate":  i18n.FormatFor(locale).LongDate(post.PublishedAt()),
		"seo":          seo.ArticleMeta(post.Title, post.Description, post.Tags),
	})
}
