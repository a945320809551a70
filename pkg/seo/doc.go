// Package seo builds sitemap documents and per-page metadata for the site.
package seo
