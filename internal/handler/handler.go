// Package handler exposes the site's HTTP surface: blog listings and posts
// with related-post recommendations, the contact form endpoint, and the
// sitemap. Responses are JSON (XML for the sitemap); page rendering happens
// in the front end.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/johanchan/website/pkg/blog"
	"github.com/johanchan/website/pkg/contact"
	"github.com/johanchan/website/pkg/i18n"
	"github.com/johanchan/website/pkg/mailer"
)

// EmailConfigFunc supplies the current transport configuration.
// The boolean reports whether any configuration is available.
type EmailConfigFunc func() (mailer.Config, bool)

// Handler carries the site's collaborators.
type Handler struct {
	repo        *blog.Repository
	mail        *mailer.Service
	validator   *contact.Validator
	translator  *i18n.Translator
	emailConfig EmailConfigFunc
	log         *slog.Logger
	siteURL     string
	locales     []string
}

// Option configures a Handler during construction.
type Option func(*Handler)

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithSiteURL sets the base URL used in the sitemap.
func WithSiteURL(url string) Option {
	return func(h *Handler) {
		h.siteURL = url
	}
}

// WithLocales sets the supported locales; the first is the default.
func WithLocales(locales ...string) Option {
	return func(h *Handler) {
		if len(locales) > 0 {
			h.locales = locales
		}
	}
}

// WithValidator overrides the contact form validator.
func WithValidator(v *contact.Validator) Option {
	return func(h *Handler) {
		if v != nil {
			h.validator = v
		}
	}
}

// New creates the site handler.
func New(repo *blog.Repository, mail *mailer.Service, translator *i18n.Translator, emailConfig EmailConfigFunc, opts ...Option) *Handler {
	h := &Handler{
		repo:        repo,
		mail:        mail,
		translator:  translator,
		emailConfig: emailConfig,
		validator:   contact.NewValidator(contact.Config{}),
		log:         slog.New(slog.DiscardHandler),
		siteURL:     "https://johan-chan.fr",
		locales:     []string{"fr", "en"},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Routes builds the site router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/api/{locale}/posts", h.listPosts)
	r.Get("/api/{locale}/posts/{slug}", h.getPost)
	r.Post("/api/contact", h.submitContact)
	r.Get("/sitemap.xml", h.sitemap)

	return r
}

// locale extracts and checks the locale URL parameter.
func (h *Handler) locale(r *http.Request) (string, bool) {
	locale := chi.URLParam(r, "locale")
	return locale, slices.Contains(h.locales, locale)
}

// negotiateLocale picks a locale from the Accept-Language header.
func (h *Handler) negotiateLocale(r *http.Request) string {
	return i18n.MatchLocale(r.Header.Get("Accept-Language"), h.locales)
}

func (h *Handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "failed to encode response",
			slog.String("error", err.Error()))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.respondJSON(w, r, status, map[string]string{"error": message})
}
