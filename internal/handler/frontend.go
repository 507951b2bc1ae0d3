// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/company-site/internal/render"
	"github.com/olegiv/company-site/internal/service"
	"github.com/olegiv/company-site/internal/store"
)

// Home page teaser sizes.
const (
	homeLatestPosts    = 3
	homeLatestServices = 6
)

// homeData is the home page payload.
type homeData struct {
	Posts    []store.Post
	Services []store.Service
}

// FrontendHandler serves the public site.
type FrontendHandler struct {
	renderer       *render.Renderer
	sessionManager *scs.SessionManager
	posts          *service.PostService
	catalog        *service.CatalogService
	inbox          *service.InboxService
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(renderer *render.Renderer, sm *scs.SessionManager, posts *service.PostService, catalog *service.CatalogService, inbox *service.InboxService) *FrontendHandler {
	return &FrontendHandler{
		renderer:       renderer,
		sessionManager: sm,
		posts:          posts,
		catalog:        catalog,
		inbox:          inbox,
	}
}

func (h *FrontendHandler) data(r *http.Request, title string, payload any) render.TemplateData {
	return render.TemplateData{
		Title:         title,
		Data:          payload,
		Authenticated: isAuthenticated(h.sessionManager, r),
	}
}

// Home shows the newest posts and services.
func (h *FrontendHandler) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.Latest(r.Context(), homeLatestPosts)
	if err != nil {
		logAndInternalError(w, "failed to load latest posts", "error", err)
		return
	}
	services, err := h.catalog.Latest(r.Context(), homeLatestServices)
	if err != nil {
		logAndInternalError(w, "failed to load latest services", "error", err)
		return
	}

	renderPage(w, r, h.renderer, http.StatusOK, templateHome, h.data(r, "", homeData{
		Posts:    posts,
		Services: services,
	}))
}

// About shows the static about page.
func (h *FrontendHandler) About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusOK, templateAbout, h.data(r, "About", nil))
}

// Services lists the full catalog.
func (h *FrontendHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list services", "error", err)
		return
	}
	renderPage(w, r, h.renderer, http.StatusOK, templateServices, h.data(r, "Services", services))
}

// Blog lists published posts, five per page.
func (h *FrontendHandler) Blog(w http.ResponseWriter, r *http.Request) {
	number := service.ParsePage(r.URL.Query().Get("page"))

	page, err := h.posts.PublishedPage(r.Context(), number)
	if err != nil {
		logAndInternalError(w, "failed to list blog posts", "page", number, "error", err)
		return
	}
	renderPage(w, r, h.renderer, http.StatusOK, templateBlog, h.data(r, "Blog", page))
}

// Post shows a single published post. Drafts are indistinguishable from
// missing posts.
func (h *FrontendHandler) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.posts.Published(r.Context(), slug)
	if errors.Is(err, service.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		logAndInternalError(w, "failed to get post", "slug", slug, "error", err)
		return
	}
	renderPage(w, r, h.renderer, http.StatusOK, templatePost, h.data(r, post.Title, post))
}

// ContactForm shows an empty contact form.
func (h *FrontendHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, http.StatusOK, service.ContactForm{}, nil)
}

// Contact stores a contact message.
func (h *FrontendHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, redirectContact) {
		return
	}

	form := contactFormFromRequest(r)
	in, err := form.Validate()
	if err != nil {
		h.renderContact(w, r, http.StatusUnprocessableEntity, form, service.FieldErrors(err))
		return
	}

	if _, err := h.inbox.Submit(r.Context(), in); err != nil {
		logAndInternalError(w, "failed to store contact message", "error", err)
		return
	}

	flashSuccess(w, r, h.renderer, redirectContact, msgContactThanks)
}

func (h *FrontendHandler) renderContact(w http.ResponseWriter, r *http.Request, status int, form service.ContactForm, errs map[string]string) {
	data := h.data(r, "Contact", nil)
	data.Form = form
	data.Errors = errs
	renderPage(w, r, h.renderer, status, templateContact, data)
}

// NotFound renders the 404 page.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, http.StatusNotFound, templateNotFound, h.data(r, "Not found", nil))
}
