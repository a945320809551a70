package handler

import (
	"log/slog"
	"net/http"

	"github.com/johanchan/website/pkg/seo"
)

// sitemap serves the XML sitemap covering the static pages and every
// published post in every locale.
func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	b := seo.NewSitemapBuilder(h.siteURL)
	b.AddHomepage()
	b.AddPage("/contact")

	for _, locale := range h.locales {
		posts, err := h.repo.ListMetadata(r.Context(), locale)
		if err != nil {
			h.log.WarnContext(r.Context(), "skipping locale in sitemap",
				slog.String("locale", locale),
				slog.String("error", err.Error()))
			continue
		}
		for _, post := range posts {
			b.AddPost(locale, post.Slug, post.PublishedAt())
		}
	}

	body, err := b.Build()
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to build sitemap",
			slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
