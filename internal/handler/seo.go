// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/company-site/internal/seo"
	"github.com/olegiv/company-site/internal/service"
)

// SEOHandler serves sitemap.xml and robots.txt.
type SEOHandler struct {
	posts     *service.PostService
	siteURL   string
	indexable bool
}

// NewSEOHandler creates a new SEOHandler. When indexable is false,
// robots.txt blocks every crawler.
func NewSEOHandler(posts *service.PostService, siteURL string, indexable bool) *SEOHandler {
	return &SEOHandler{
		posts:     posts,
		siteURL:   siteURL,
		indexable: indexable,
	}
}

// Sitemap lists the public pages and every published post.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.AllPublished(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list posts for sitemap", "error", err)
		return
	}

	entries := make([]seo.SitemapPost, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, seo.SitemapPost{Slug: p.Slug, UpdatedAt: p.CreatedAt})
	}

	body, err := seo.GenerateSitemap(h.siteURL, entries)
	if err != nil {
		logAndInternalError(w, "failed to build sitemap", "error", err)
		return
	}

	w.Header().Set(HeaderContentType, "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

// Robots serves robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	body := seo.RobotsConfig{
		SiteURL:     h.siteURL,
		DisallowAll: !h.indexable,
	}.Build()

	w.Header().Set(HeaderContentType, "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}
